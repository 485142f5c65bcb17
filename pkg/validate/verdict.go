package validate

import "fmt"

// Kind classifies the outcome of checking one document.
type Kind int

const (
	OK               Kind = iota // document is well-formed
	MalformedToken               // tag not closed with '>'
	InvalidLength                // tag name outside 1-10 characters
	InvalidCharacter             // tag name contains a non A-Z character
	UnmatchedClose               // closing tag with nothing open
	MismatchedClose              // closing tag disagrees with innermost open tag
	UnclosedAtEOF                // tags still open at end of document
)

var kindNames = [...]string{
	OK:               "OK",
	MalformedToken:   "MalformedToken",
	InvalidLength:    "InvalidLength",
	InvalidCharacter: "InvalidCharacter",
	UnmatchedClose:   "UnmatchedClose",
	MismatchedClose:  "MismatchedClose",
	UnclosedAtEOF:    "UnclosedAtEOF",
}

var checkIDs = [...]string{
	MalformedToken:   "TAG-001",
	InvalidLength:    "TAG-002",
	InvalidCharacter: "TAG-003",
	UnmatchedClose:   "TAG-004",
	MismatchedClose:  "TAG-005",
	UnclosedAtEOF:    "TAG-006",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// CheckID returns the stable identifier used for k in machine-readable
// reports. OK has no check ID.
func (k Kind) CheckID() string {
	if k <= OK || int(k) >= len(checkIDs) {
		return ""
	}
	return checkIDs[k]
}

// Verdict is the single result of checking one document.
type Verdict struct {
	Kind Kind
	Line int    // 1-based line the diagnostic refers to; 0 when OK
	Tag  string // expected tag name for MismatchedClose and UnclosedAtEOF

	distinct bool
}

// IsOK reports whether the document was well-formed.
func (v Verdict) IsOK() bool {
	return v.Kind == OK
}

// Message returns the diagnostic text without the line prefix, or the
// empty string when the verdict is OK.
func (v Verdict) Message() string {
	switch v.Kind {
	case MalformedToken:
		if v.distinct {
			return "unterminated tag."
		}
		return "bad character in tag name."
	case InvalidCharacter:
		return "bad character in tag name."
	case InvalidLength:
		return "too many/few characters in tag name."
	case UnmatchedClose:
		return "no matching begin tag."
	case MismatchedClose:
		return "expecting </" + v.Tag + ">."
	case UnclosedAtEOF:
		return "expected </" + v.Tag + ">."
	}
	return ""
}

// String renders the verdict as its single output line.
func (v Verdict) String() string {
	if v.IsOK() {
		return "OK"
	}
	return fmt.Sprintf("line %d: %s", v.Line, v.Message())
}
