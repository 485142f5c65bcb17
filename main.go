package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/adammathes/tagverify/pkg/batch"
	"github.com/adammathes/tagverify/pkg/report"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code:
// 0=all documents OK, 1=invalid documents or input errors, 2=fatal.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("tagverify", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: tagverify [flags] [file ...]")
		fs.PrintDefaults()
	}

	var (
		jsonOutput  string
		showVersion bool
		opts        batch.Options
	)
	fs.StringVarP(&jsonOutput, "json", "j", "", "write the JSON report to `path` (- for stdout, replacing text output)")
	fs.StringVar(&opts.Encoding, "encoding", "utf-8", "input encoding: utf-8, latin1, windows-1252")
	fs.IntVar(&opts.CacheSize, "cache", 0, "reuse verdicts for up to `n` identical documents (0 disables)")
	fs.BoolVar(&opts.Validate.DistinctMessages, "distinct-messages", false, "report unterminated tags separately from bad characters")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintf(stdout, "tagverify %s\n", version)
		return 0
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var jsonFile io.Writer
	if jsonOutput != "" && jsonOutput != "-" {
		f, err := os.Create(jsonOutput)
		if err != nil {
			fmt.Fprintf(stderr, "Fatal: %v\n", err)
			return 2
		}
		defer f.Close()
		jsonFile = f
	}

	code := 0
	for _, path := range paths {
		r, err := checkPath(path, stdin, opts)
		if r != nil {
			if err := emit(r, jsonOutput, jsonFile, stdout, stderr); err != nil {
				fmt.Fprintf(stderr, "Fatal: writing report: %v\n", err)
				return 2
			}
		}
		if err != nil {
			fmt.Fprintf(stderr, "Fatal: %v\n", err)
			return 2
		}
		switch {
		case r.FatalCount() > 0:
			code = 2
		case !r.IsValid() && code == 0:
			code = 1
		}
	}
	return code
}

func checkPath(path string, stdin io.Reader, opts batch.Options) (*report.Report, error) {
	if path == "-" {
		return batch.Run(stdin, "<stdin>", opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return batch.Run(f, path, opts)
}

func emit(r *report.Report, jsonOutput string, jsonFile io.Writer, stdout, stderr io.Writer) error {
	r.WriteFaults(stderr)
	if jsonOutput == "-" {
		return r.WriteJSON(stdout)
	}
	if err := r.WriteText(stdout); err != nil {
		return err
	}
	if jsonFile != nil {
		return r.WriteJSON(jsonFile)
	}
	return nil
}
