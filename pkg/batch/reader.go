// Package batch reads the count-prefixed test case protocol and runs the
// validator over every document in it.
//
// The input is a sequence of test cases. Each begins with a line holding
// a count N followed by exactly N content lines. A count of 0 ends the
// input.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adammathes/tagverify/pkg/validate"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

var (
	// ErrBadCount is returned for a count line that is not a
	// non-negative integer. The reader can continue after it.
	ErrBadCount = errors.New("bad test case count")
	// ErrTruncated is returned when input ends inside a document.
	ErrTruncated = errors.New("truncated document")
)

// LineError reports a protocol problem at a given input line.
type LineError struct {
	Line   int
	Detail string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("input line %d: %v: %s", e.Line, e.Err, e.Detail)
}

func (e *LineError) Unwrap() error { return e.Err }

// Reader yields the documents of a batch one at a time.
type Reader struct {
	sc         *bufio.Scanner
	line       int
	terminated bool
	done       bool
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Reader{sc: sc}
}

// Line returns the number of input lines consumed so far.
func (r *Reader) Line() int { return r.line }

// Terminated reports whether the batch ended with an explicit 0 count.
func (r *Reader) Terminated() bool { return r.terminated }

func (r *Reader) scan() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	r.line++
	return r.sc.Text(), true
}

// Next returns the next document. It returns io.EOF when the batch is
// over, either at a 0 count or at end of input; Terminated tells which.
// Errors matching ErrBadCount leave the reader usable.
func (r *Reader) Next() (validate.Document, error) {
	if r.done {
		return nil, io.EOF
	}
	text, ok := r.scan()
	if !ok {
		r.done = true
		if err := r.sc.Err(); err != nil {
			return nil, fmt.Errorf("reading count: %w", err)
		}
		return nil, io.EOF
	}
	countLine := r.line
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return nil, &LineError{Line: countLine, Detail: strconv.Quote(text), Err: ErrBadCount}
	}
	if n == 0 {
		r.done = true
		r.terminated = true
		return nil, io.EOF
	}

	doc := make(validate.Document, 0, n)
	for len(doc) < n {
		text, ok := r.scan()
		if !ok {
			r.done = true
			if err := r.sc.Err(); err != nil {
				return nil, fmt.Errorf("reading document at line %d: %w", countLine, err)
			}
			return nil, &LineError{
				Line:   countLine,
				Detail: fmt.Sprintf("expected %d lines, got %d", n, len(doc)),
				Err:    ErrTruncated,
			}
		}
		doc = append(doc, text)
	}
	return doc, nil
}
