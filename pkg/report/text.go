package report

import (
	"fmt"
	"io"
)

// WriteText writes each case as a "Test Case N" banner followed by its
// verdict line.
func (r *Report) WriteText(w io.Writer) error {
	for _, c := range r.Cases {
		if _, err := fmt.Fprintf(w, "Test Case %d\n%s\n", c.Number, c.Verdict); err != nil {
			return err
		}
	}
	return nil
}

// WriteFaults writes human-readable fault lines to w, one per fault.
func (r *Report) WriteFaults(w io.Writer) {
	for _, m := range r.Faults {
		fmt.Fprintln(w, m.String())
	}
}
