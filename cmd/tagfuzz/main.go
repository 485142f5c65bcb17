// Command tagfuzz generates a randomized batch of markup documents with
// injected faults, together with a manifest of their expected verdicts.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/uuid"
	"github.com/spf13/pflag"

	"github.com/adammathes/tagverify/pkg/fuzz"
	"github.com/adammathes/tagverify/pkg/validate"
)

// Manifest describes a generated corpus.
type Manifest struct {
	ID        string       `json:"id"`
	Seed      int64        `json:"seed"`
	FaultRate float64      `json:"fault_rate"`
	Faults    []fuzz.Fault `json:"faults"`
	Cases     []CaseInfo   `json:"cases"`
}

// CaseInfo records one generated test case.
type CaseInfo struct {
	Case     int    `json:"case"`
	Lines    int    `json:"lines"`
	Fault    string `json:"fault,omitempty"`
	Kind     string `json:"kind"`
	Expected string `json:"expected"`
}

func main() {
	var (
		count     int
		seed      int64
		faultRate float64
		outDir    string
	)
	pflag.IntVarP(&count, "count", "n", 100, "number of documents to generate")
	pflag.Int64Var(&seed, "seed", 42, "random seed")
	pflag.Float64Var(&faultRate, "fault-rate", 0.7, "probability that a document gets a fault")
	pflag.StringVarP(&outDir, "out", "o", "testdata/synthetic", "output `dir`ectory")
	pflag.Parse()

	m, err := writeCorpus(outDir, count, seed, faultRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d documents in %s (corpus %s)\n", len(m.Cases), outDir, m.ID)
}

// writeCorpus writes input.txt and manifest.json into dir.
func writeCorpus(dir string, count int, seed int64, faultRate float64) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generating corpus id: %w", err)
	}
	m := &Manifest{
		ID:        id.String(),
		Seed:      seed,
		FaultRate: faultRate,
		Faults:    fuzz.Faults(),
	}

	f, err := os.Create(filepath.Join(dir, "input.txt"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	rng := rand.New(rand.NewSource(seed))
	for i := 1; i <= count; i++ {
		c := fuzz.Generate(rng, faultRate)
		w.WriteString(strconv.Itoa(len(c.Lines)) + "\n")
		for _, line := range c.Lines {
			w.WriteString(line + "\n")
		}
		v := validate.Check(c.Lines)
		info := CaseInfo{Case: i, Lines: len(c.Lines), Kind: v.Kind.String(), Expected: v.String()}
		if c.Fault != nil {
			info.Fault = c.Fault.Name
		}
		m.Cases = append(m.Cases, info)
	}
	w.WriteString("0\n")
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("writing input: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	return m, nil
}
