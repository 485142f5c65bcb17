// Package tag extracts raw tag tokens from lines of markup text.
package tag

import (
	"iter"
	"strings"
)

// Token is a raw tag found on a line, from its '<' up to and including
// its terminator.
type Token struct {
	Text string // raw text, always starting with '<'
	Line int    // 1-based line number
}

// WellTerminated reports whether the token was closed by '>' rather than
// by whitespace or the end of the line.
func (t Token) WellTerminated() bool {
	return strings.HasSuffix(t.Text, ">")
}

// Content returns the text between the outer '<' and '>'.
// It is only meaningful for well-terminated tokens.
func (t Token) Content() string {
	if !t.WellTerminated() {
		return t.Text[1:]
	}
	return t.Text[1 : len(t.Text)-1]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Scan returns the tag tokens of line in left-to-right order. Each token
// starts at the next unconsumed '<' and runs to the first '>', whitespace
// character or end of line. The sequence is lazy and may be ranged over
// any number of times.
func Scan(line string, lineNo int) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		pos := 0
		for {
			i := strings.IndexByte(line[pos:], '<')
			if i < 0 {
				return
			}
			start := pos + i
			end := start + 1
			for end < len(line) {
				c := line[end]
				end++
				if c == '>' || isSpace(c) {
					break
				}
			}
			if !yield(Token{Text: line[start:end], Line: lineNo}) {
				return
			}
			pos = end
		}
	}
}
