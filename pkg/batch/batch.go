package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/adammathes/tagverify/pkg/report"
	"github.com/adammathes/tagverify/pkg/validate"
)

// Fault check IDs.
const (
	CheckBadCount     = "BAT-001"
	CheckTruncated    = "BAT-002"
	CheckNoTerminator = "BAT-003"
)

// Options configures a batch run.
type Options struct {
	// Encoding names the input character encoding: utf-8 (default),
	// latin1/iso-8859-1 or windows-1252/cp1252.
	Encoding string

	// CacheSize enables reuse of verdicts for identical documents,
	// keeping up to this many. Zero disables the cache.
	CacheSize int

	// Validate is passed to the validator for every document.
	Validate validate.Options
}

// Run reads a whole batch from src and returns a report with one case per
// document. Protocol problems become report faults; only I/O failures
// are returned as errors.
func Run(src io.Reader, name string, opts Options) (*report.Report, error) {
	in, err := decode(src, opts.Encoding)
	if err != nil {
		return nil, err
	}
	check, err := newChecker(opts)
	if err != nil {
		return nil, err
	}

	r := report.NewReport(name)
	rd := NewReader(in)
	for {
		doc, err := rd.Next()
		var le *LineError
		switch {
		case err == nil:
			r.AddCase(len(doc), check(doc))
			continue
		case errors.Is(err, io.EOF):
			if !rd.Terminated() {
				r.AddFault(report.Warning, CheckNoTerminator, "input ended without a 0 count", rd.Line())
			}
			return r, nil
		case errors.As(err, &le) && errors.Is(err, ErrBadCount):
			r.AddFault(report.Error, CheckBadCount, "bad test case count "+le.Detail, le.Line)
		case errors.As(err, &le) && errors.Is(err, ErrTruncated):
			r.AddFault(report.Fatal, CheckTruncated, "truncated document: "+le.Detail, le.Line)
			return r, nil
		default:
			return r, fmt.Errorf("reading %s: %w", name, err)
		}
	}
}

// newChecker returns the per-document validation function, memoized when
// a cache is configured.
func newChecker(opts Options) (func(validate.Document) validate.Verdict, error) {
	vopts := opts.Validate
	if opts.CacheSize <= 0 {
		return func(doc validate.Document) validate.Verdict {
			return validate.CheckWithOptions(doc, vopts)
		}, nil
	}
	cache, err := lru.New(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating verdict cache: %w", err)
	}
	return func(doc validate.Document) validate.Verdict {
		key := strings.Join(doc, "\n")
		if v, ok := cache.Get(key); ok {
			return v.(validate.Verdict)
		}
		v := validate.CheckWithOptions(doc, vopts)
		cache.Add(key, v)
		return v
	}, nil
}
