// Command tagcompare runs two checker commands on the same batch input
// and compares their verdicts test case by test case.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Discrepancy is a test case on which the two checkers disagree.
type Discrepancy struct {
	Case int    `json:"case"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// runChecker runs command with the input file on stdin and returns its
// standard output. A non-zero exit is expected for invalid documents.
func runChecker(command, inputPath string) (string, error) {
	args := strings.Fields(command)
	if len(args) == 0 {
		return "", fmt.Errorf("empty command")
	}
	in, err := os.Open(inputPath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	var out bytes.Buffer
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = in
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return "", fmt.Errorf("running %s: %w", args[0], err)
		}
	}
	return out.String(), nil
}

// splitCases maps test case numbers to their verdict lines, using the
// "Test Case N" banners of the text output.
func splitCases(output string) map[int]string {
	cases := map[int]string{}
	cur := 0
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if rest, ok := strings.CutPrefix(line, "Test Case "); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
				cur = n
				cases[cur] = ""
				continue
			}
		}
		if cur == 0 || line == "" {
			continue
		}
		if cases[cur] != "" {
			cases[cur] += "\n"
		}
		cases[cur] += line
	}
	return cases
}

// compare returns the cases whose verdicts differ, ordered by case number.
// A case missing from one side compares as the empty verdict.
func compare(a, b map[int]string) []Discrepancy {
	seen := map[int]bool{}
	for n := range a {
		seen[n] = true
	}
	for n := range b {
		seen[n] = true
	}
	var out []Discrepancy
	for n := range seen {
		if a[n] != b[n] {
			out = append(out, Discrepancy{Case: n, A: a[n], B: b[n]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Case < out[j].Case })
	return out
}

func main() {
	var (
		cmdA, cmdB  string
		inputPath   string
		resultsPath string
	)
	pflag.StringVar(&cmdA, "a", "./tagverify", "first checker command")
	pflag.StringVar(&cmdB, "b", "", "second checker command (required)")
	pflag.StringVarP(&inputPath, "input", "i", "testdata/synthetic/input.txt", "batch input `file`")
	pflag.StringVarP(&resultsPath, "out", "o", "", "write discrepancies as JSON to `file`")
	pflag.Parse()
	if cmdB == "" {
		fmt.Fprintln(os.Stderr, "Usage: tagcompare --b <command> [--a <command>] [--input file]")
		os.Exit(2)
	}

	outA, err := runChecker(cmdA, inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(2)
	}
	outB, err := runChecker(cmdB, inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(2)
	}

	casesA, casesB := splitCases(outA), splitCases(outB)
	diffs := compare(casesA, casesB)
	for _, d := range diffs {
		fmt.Printf("Test Case %d\n  a: %s\n  b: %s\n", d.Case, d.A, d.B)
	}

	if resultsPath != "" {
		data, _ := json.MarshalIndent(diffs, "", "  ")
		if err := os.WriteFile(resultsPath, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal: writing results: %v\n", err)
			os.Exit(2)
		}
	}

	fmt.Println()
	fmt.Printf("Test cases (a):   %d\n", len(casesA))
	fmt.Printf("Test cases (b):   %d\n", len(casesB))
	fmt.Printf("Discrepancies:    %d\n", len(diffs))
	if len(diffs) > 0 {
		os.Exit(1)
	}
}
