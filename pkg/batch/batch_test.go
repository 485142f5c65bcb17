package batch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adammathes/tagverify/pkg/report"
)

const sample = `2
<HTML>
</HTML>
3
<HTML>
<BODY>
</HTML>
1
<HTML>
1
</HTML>
1
<HTML1234567>
1
<ht>
0
`

func TestRun(t *testing.T) {
	r, err := Run(strings.NewReader(sample), "sample", Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	want := `Test Case 1
OK
Test Case 2
line 3: expecting </BODY>.
Test Case 3
line 1: expected </HTML>.
Test Case 4
line 1: no matching begin tag.
Test Case 5
line 1: too many/few characters in tag name.
Test Case 6
line 1: bad character in tag name.
`
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
	if len(r.Faults) != 0 {
		t.Errorf("unexpected faults: %v", r.Faults)
	}
}

func TestRunFaults(t *testing.T) {
	r, err := Run(strings.NewReader("x\n1\n<A></A>\n2\n<A>\n"), "faulty", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Cases) != 1 || !r.Cases[0].Verdict.IsOK() {
		t.Fatalf("expected one OK case, got %+v", r.Cases)
	}
	if r.ErrorCount() != 1 || r.FatalCount() != 1 {
		t.Fatalf("faults: %v", r.Faults)
	}
	if r.Faults[0].CheckID != CheckBadCount || r.Faults[0].Line != 1 {
		t.Errorf("first fault = %v", r.Faults[0])
	}
	if r.Faults[1].CheckID != CheckTruncated || r.Faults[1].Line != 4 {
		t.Errorf("second fault = %v", r.Faults[1])
	}
}

func TestRunNoTerminator(t *testing.T) {
	r, err := Run(strings.NewReader("1\n<A></A>\n"), "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if r.WarningCount() != 1 || r.Faults[0].CheckID != CheckNoTerminator {
		t.Errorf("faults: %v", r.Faults)
	}
	if !r.IsValid() {
		t.Error("missing terminator alone should not invalidate the report")
	}
}

func TestRunCache(t *testing.T) {
	in := "1\n<A>\n1\n<A>\n1\n<B></B>\n1\n<A>\n0\n"
	plain, err := Run(strings.NewReader(in), "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	cached, err := Run(strings.NewReader(in), "", Options{CacheSize: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(plain.Cases) != len(cached.Cases) {
		t.Fatalf("case count %d != %d", len(plain.Cases), len(cached.Cases))
	}
	for i := range plain.Cases {
		if plain.Cases[i] != cached.Cases[i] {
			t.Errorf("case %d: %v != %v", i+1, plain.Cases[i], cached.Cases[i])
		}
	}
}

func TestRunDistinctMessages(t *testing.T) {
	opts := Options{}
	opts.Validate.DistinctMessages = true
	r, err := Run(strings.NewReader("1\n<A\n0\n"), "", opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Cases[0].Verdict.String(); got != "line 1: unterminated tag." {
		t.Errorf("got %q", got)
	}
}

func TestRunEncoding(t *testing.T) {
	// 0xC9 is É in latin1; it is not an A-Z letter.
	in := []byte("1\n<\xc9>\n0\n")
	r, err := Run(bytes.NewReader(in), "", Options{Encoding: "latin1"})
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Cases[0].Verdict.String(); got != "line 1: bad character in tag name." {
		t.Errorf("got %q", got)
	}

	if _, err := Run(bytes.NewReader(in), "", Options{Encoding: "ebcdic"}); err == nil {
		t.Error("expected error for unsupported encoding")
	}
}

func TestRunFaultSeverities(t *testing.T) {
	r, err := Run(strings.NewReader("?\n0\n"), "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Faults) != 1 || r.Faults[0].Severity != report.Error {
		t.Errorf("faults: %v", r.Faults)
	}
}
