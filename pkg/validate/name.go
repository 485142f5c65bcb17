package validate

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest tag name accepted, not counting the '/'
// of a closing tag.
const MaxNameLength = 10

// NameResult is the outcome of checking a tag name's lexical form.
type NameResult int

const (
	NameValid NameResult = iota
	NameInvalidLength
	NameInvalidCharacter
)

func (r NameResult) String() string {
	switch r {
	case NameValid:
		return "Valid"
	case NameInvalidLength:
		return "Invalid_Length"
	case NameInvalidCharacter:
		return "Invalid_Character"
	}
	return "NameResult(?)"
}

// CheckName checks the content of a tag with its outer brackets already
// removed. A leading '/' marks a closing tag and is not part of the name.
// Length is checked before characters, so an empty name is always a
// length error.
func CheckName(content string) NameResult {
	name := strings.TrimPrefix(content, "/")
	n := utf8.RuneCountInString(name)
	if n == 0 || n > MaxNameLength {
		return NameInvalidLength
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c < 'A' || c > 'Z' {
			return NameInvalidCharacter
		}
	}
	return NameValid
}

// isClosing reports whether tag content denotes a closing tag.
func isClosing(content string) bool {
	return strings.HasPrefix(content, "/")
}
