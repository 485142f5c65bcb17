// Package validate checks that the tags of a document are lexically valid
// and properly nested.
package validate

import (
	"github.com/adammathes/tagverify/pkg/tag"
)

// Document is the ordered lines of one markup document.
type Document []string

// Options configures validation behavior.
type Options struct {
	// DistinctMessages reports unterminated tags as "unterminated tag."
	// instead of sharing the "bad character in tag name." message with
	// invalid characters. The Kind is MalformedToken either way.
	DistinctMessages bool
}

// Check validates doc and returns its verdict.
func Check(doc Document) Verdict {
	return CheckWithOptions(doc, Options{})
}

// CheckWithOptions validates doc with the given options. Evaluation stops
// at the first error; each document gets a fresh open-tag stack.
func CheckWithOptions(doc Document, opts Options) Verdict {
	n := &nester{state: scanning}
	v := n.run(doc)
	if v.Kind == MalformedToken {
		v.distinct = opts.DistinctMessages
	}
	return v
}

// state is the position of a nester in its evaluation.
type state int

const (
	scanning state = iota
	failed
	succeeded
)

// nester drives the lexer over a document and tracks open tags.
type nester struct {
	state   state
	stack   []string
	verdict Verdict
}

func (n *nester) run(doc Document) Verdict {
	for i, line := range doc {
		for tok := range tag.Scan(line, i+1) {
			n.token(tok)
			if n.state == failed {
				return n.verdict
			}
		}
	}
	n.finish(len(doc))
	return n.verdict
}

func (n *nester) fail(kind Kind, line int, name string) {
	n.state = failed
	n.verdict = Verdict{Kind: kind, Line: line, Tag: name}
}

// token applies one token to the stack.
func (n *nester) token(tok tag.Token) {
	if !tok.WellTerminated() {
		n.fail(MalformedToken, tok.Line, "")
		return
	}
	content := tok.Content()
	switch CheckName(content) {
	case NameInvalidLength:
		n.fail(InvalidLength, tok.Line, "")
		return
	case NameInvalidCharacter:
		n.fail(InvalidCharacter, tok.Line, "")
		return
	}

	if !isClosing(content) {
		n.stack = append(n.stack, content)
		return
	}
	if len(n.stack) == 0 {
		n.fail(UnmatchedClose, tok.Line, "")
		return
	}
	top := n.pop()
	if top != content[1:] {
		n.fail(MismatchedClose, tok.Line, top)
	}
}

func (n *nester) pop() string {
	top := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	return top
}

// finish applies the end-of-document rule. Unclosed tags are reported at
// the document's last line.
func (n *nester) finish(lines int) {
	if len(n.stack) > 0 {
		n.fail(UnclosedAtEOF, lines, n.pop())
		return
	}
	n.state = succeeded
	n.verdict = Verdict{Kind: OK}
}
