package report

import (
	"fmt"

	"github.com/adammathes/tagverify/pkg/validate"
)

// Severity levels for driver faults.
type Severity string

const (
	Fatal   Severity = "FATAL"
	Error   Severity = "ERROR"
	Warning Severity = "WARNING"
)

// Message is a problem with the batch input itself, as opposed to a
// problem inside a document.
type Message struct {
	Severity Severity `json:"severity"`
	CheckID  string   `json:"check_id"`
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"`
}

func (m Message) String() string {
	if m.Line > 0 {
		return fmt.Sprintf("%s(%s): %s [input line %d]", m.Severity, m.CheckID, m.Message, m.Line)
	}
	return fmt.Sprintf("%s(%s): %s", m.Severity, m.CheckID, m.Message)
}

// Case is the verdict for one test case of a batch.
type Case struct {
	Number  int
	Lines   int
	Verdict validate.Verdict
}

// Report collects the cases and faults of one batch run.
type Report struct {
	Source string
	Cases  []Case
	Faults []Message
}

// NewReport creates an empty report for the named input.
func NewReport(source string) *Report {
	return &Report{Source: source}
}

// AddCase appends the next test case and returns its 1-based number.
func (r *Report) AddCase(lines int, v validate.Verdict) int {
	n := len(r.Cases) + 1
	r.Cases = append(r.Cases, Case{Number: n, Lines: lines, Verdict: v})
	return n
}

// AddFault appends a driver fault found at the given input line.
func (r *Report) AddFault(sev Severity, checkID string, msg string, line int) {
	r.Faults = append(r.Faults, Message{
		Severity: sev,
		CheckID:  checkID,
		Message:  msg,
		Line:     line,
	})
}

// InvalidCount returns the number of cases whose verdict is not OK.
func (r *Report) InvalidCount() int {
	n := 0
	for _, c := range r.Cases {
		if !c.Verdict.IsOK() {
			n++
		}
	}
	return n
}

// FatalCount returns the number of FATAL faults.
func (r *Report) FatalCount() int {
	return r.count(Fatal)
}

// ErrorCount returns the number of ERROR faults.
func (r *Report) ErrorCount() int {
	return r.count(Error)
}

// WarningCount returns the number of WARNING faults.
func (r *Report) WarningCount() int {
	return r.count(Warning)
}

func (r *Report) count(sev Severity) int {
	n := 0
	for _, m := range r.Faults {
		if m.Severity == sev {
			n++
		}
	}
	return n
}

// IsValid returns true if every case is OK and there are no FATAL or
// ERROR faults.
func (r *Report) IsValid() bool {
	return r.InvalidCount() == 0 && r.FatalCount() == 0 && r.ErrorCount() == 0
}
