package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adammathes/tagverify/pkg/validate"
)

func sampleReport() *Report {
	r := NewReport("sample.txt")
	r.AddCase(2, validate.Check(validate.Document{"<HTML>", "</HTML>"}))
	r.AddCase(3, validate.Check(validate.Document{"<HTML>", "<BODY>", "</HTML>"}))
	return r
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleReport().WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	want := "Test Case 1\nOK\nTest Case 2\nline 3: expecting </BODY>.\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestCounts(t *testing.T) {
	r := sampleReport()
	if r.InvalidCount() != 1 {
		t.Errorf("InvalidCount = %d, want 1", r.InvalidCount())
	}
	if r.IsValid() {
		t.Error("report with an invalid case should not be valid")
	}

	r = NewReport("")
	r.AddCase(1, validate.Check(validate.Document{"x"}))
	r.AddFault(Warning, "BAT-003", "missing terminator", 0)
	if !r.IsValid() {
		t.Error("warnings alone should not invalidate a report")
	}
	r.AddFault(Fatal, "BAT-002", "truncated", 4)
	if r.IsValid() || r.FatalCount() != 1 || r.WarningCount() != 1 {
		t.Errorf("fatal=%d warning=%d valid=%v", r.FatalCount(), r.WarningCount(), r.IsValid())
	}
}

func TestWriteFaults(t *testing.T) {
	r := NewReport("")
	r.AddFault(Error, "BAT-001", `bad count "x"`, 3)
	var buf bytes.Buffer
	r.WriteFaults(&buf)
	if got := strings.TrimSpace(buf.String()); got != `ERROR(BAT-001): bad count "x" [input line 3]` {
		t.Errorf("got %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleReport().WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Valid || out.InvalidCount != 1 || len(out.Cases) != 2 {
		t.Fatalf("unexpected summary: %+v", out)
	}
	c := out.Cases[1]
	if c.CheckID != "TAG-005" || c.Tag != "BODY" || c.Line != 3 || c.Kind != "MismatchedClose" {
		t.Errorf("unexpected case: %+v", c)
	}
	if out.Faults == nil {
		t.Error("faults should encode as an empty array")
	}
}
