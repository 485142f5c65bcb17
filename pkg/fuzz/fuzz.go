// Package fuzz generates random markup documents, either well-formed or
// with one injected fault, for exercising the validator.
package fuzz

import (
	"math/rand"
	"strings"

	"github.com/adammathes/tagverify/pkg/validate"
)

// Fault describes a single mutation applied to a generated document.
type Fault struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Case is one generated document.
type Case struct {
	Lines []string      `json:"lines"`
	Fault *Fault        `json:"fault,omitempty"`
	Kind  validate.Kind `json:"-"` // verdict kind the fault produces; OK without a fault
}

var names = []string{"HTML", "HEAD", "BODY", "TITLE", "P", "DIV", "SPAN", "UL", "LI", "TABLE", "TR", "TD", "B", "I", "BLOCKQUOTE"}

var words = []string{"lorem", "ipsum", "dolor", "sit", "amet", "42", "a>b", "x=y", "Hello", "WORLD"}

// piece is one tag or word of a document before line layout.
type piece struct {
	text  string
	name  string
	open  bool
	close bool
	match int // index of the matching open or close piece
}

type builder struct {
	pieces []piece
}

func (b *builder) open(name string) int {
	b.pieces = append(b.pieces, piece{text: "<" + name + ">", name: name, open: true})
	return len(b.pieces) - 1
}

func (b *builder) close(open int) {
	name := b.pieces[open].name
	b.pieces = append(b.pieces, piece{text: "</" + name + ">", name: name, close: true, match: open})
	b.pieces[open].match = len(b.pieces) - 1
}

func (b *builder) word(rng *rand.Rand) {
	b.pieces = append(b.pieces, piece{text: words[rng.Intn(len(words))]})
}

// element appends a random element and its children.
func (b *builder) element(rng *rand.Rand, depth int) {
	i := b.open(names[rng.Intn(len(names))])
	for n := rng.Intn(4); n > 0; n-- {
		if depth > 0 && rng.Intn(3) > 0 {
			b.element(rng, depth-1)
		} else {
			b.word(rng)
		}
	}
	b.close(i)
}

// tags returns the indexes of pieces that satisfy pred.
func (b *builder) tags(pred func(piece) bool) []int {
	var out []int
	for i, p := range b.pieces {
		if pred(p) {
			out = append(out, i)
		}
	}
	return out
}

func isOpen(p piece) bool  { return p.open }
func isClose(p piece) bool { return p.close }

func (b *builder) insert(at int, text string) {
	b.pieces = append(b.pieces, piece{})
	copy(b.pieces[at+1:], b.pieces[at:])
	b.pieces[at] = piece{text: text}
}

// rename gives an element a new name on both its tags.
func (b *builder) rename(open int, name string) {
	b.pieces[open].text = "<" + name + ">"
	b.pieces[b.pieces[open].match].text = "</" + name + ">"
}

// layout spreads the pieces over lines. Words are always separated from
// their neighbors so that they never join a tag token.
func (b *builder) layout(rng *rand.Rand) []string {
	var lines []string
	var cur strings.Builder
	for i, p := range b.pieces {
		if i > 0 {
			switch {
			case rng.Intn(4) == 0:
				lines = append(lines, cur.String())
				cur.Reset()
			case p.open || p.close:
				if !b.pieces[i-1].open && !b.pieces[i-1].close || rng.Intn(2) == 0 {
					cur.WriteByte(' ')
				}
			default:
				cur.WriteByte(' ')
			}
		}
		cur.WriteString(p.text)
	}
	lines = append(lines, cur.String())
	if rng.Intn(5) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// faultFunc is a function that mutates a builder to inject a fault.
type faultFunc struct {
	name        string
	description string
	kind        validate.Kind
	weight      int // relative probability weight
	apply       func(b *builder, rng *rand.Rand)
}

func pick(rng *rand.Rand, idx []int) int {
	return idx[rng.Intn(len(idx))]
}

var allFaults = []faultFunc{
	{
		name:        "unterminated_tag",
		description: "Drop the '>' of a tag so that whitespace ends it",
		kind:        validate.MalformedToken,
		weight:      3,
		apply: func(b *builder, rng *rand.Rand) {
			i := pick(rng, b.tags(func(p piece) bool { return p.open || p.close }))
			b.pieces[i].text = strings.TrimSuffix(b.pieces[i].text, ">") + " "
		},
	},
	{
		name:        "long_name",
		description: "Rename an element to more than ten letters",
		kind:        validate.InvalidLength,
		weight:      2,
		apply: func(b *builder, rng *rand.Rand) {
			n := validate.MaxNameLength + 1 + rng.Intn(5)
			b.rename(pick(rng, b.tags(isOpen)), strings.Repeat("X", n))
		},
	},
	{
		name:        "empty_name",
		description: "Insert an empty tag",
		kind:        validate.InvalidLength,
		weight:      1,
		apply: func(b *builder, rng *rand.Rand) {
			text := "<>"
			if rng.Intn(2) == 0 {
				text = "</>"
			}
			b.insert(rng.Intn(len(b.pieces)+1), text)
		},
	},
	{
		name:        "lowercase_name",
		description: "Lowercase the name of an element",
		kind:        validate.InvalidCharacter,
		weight:      2,
		apply: func(b *builder, rng *rand.Rand) {
			i := pick(rng, b.tags(isOpen))
			b.rename(i, strings.ToLower(b.pieces[i].name))
		},
	},
	{
		name:        "digit_in_name",
		description: "Replace the last letter of an element name with a digit",
		kind:        validate.InvalidCharacter,
		weight:      2,
		apply: func(b *builder, rng *rand.Rand) {
			i := pick(rng, b.tags(isOpen))
			name := b.pieces[i].name
			b.rename(i, name[:len(name)-1]+string(rune('0'+rng.Intn(10))))
		},
	},
	{
		name:        "stray_close",
		description: "Start the document with a closing tag",
		kind:        validate.UnmatchedClose,
		weight:      2,
		apply: func(b *builder, rng *rand.Rand) {
			b.insert(0, "</"+names[rng.Intn(len(names))]+">")
		},
	},
	{
		name:        "mismatched_close",
		description: "Change the name of a closing tag",
		kind:        validate.MismatchedClose,
		weight:      3,
		apply: func(b *builder, rng *rand.Rand) {
			i := pick(rng, b.tags(isClose))
			name := b.pieces[i].name
			for name == b.pieces[i].name {
				name = names[rng.Intn(len(names))]
			}
			b.pieces[i].text = "</" + name + ">"
		},
	},
	{
		name:        "unclosed",
		description: "Drop the final closing tag",
		kind:        validate.UnclosedAtEOF,
		weight:      3,
		apply: func(b *builder, rng *rand.Rand) {
			last := b.tags(isClose)
			i := last[len(last)-1]
			b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
		},
	},
}

// Faults lists the names and descriptions of all injectable faults.
func Faults() []Fault {
	out := make([]Fault, len(allFaults))
	for i, f := range allFaults {
		out[i] = Fault{Name: f.name, Description: f.description}
	}
	return out
}

func chooseFault(rng *rand.Rand) faultFunc {
	total := 0
	for _, f := range allFaults {
		total += f.weight
	}
	n := rng.Intn(total)
	for _, f := range allFaults {
		if n < f.weight {
			return f
		}
		n -= f.weight
	}
	return allFaults[len(allFaults)-1]
}

// Generate returns a random document. With probability faultRate one
// fault is injected into it.
func Generate(rng *rand.Rand, faultRate float64) Case {
	b := &builder{}
	for n := 1 + rng.Intn(3); n > 0; n-- {
		b.element(rng, 3)
	}
	c := Case{Kind: validate.OK}
	if rng.Float64() < faultRate {
		f := chooseFault(rng)
		f.apply(b, rng)
		c.Fault = &Fault{Name: f.name, Description: f.description}
		c.Kind = f.kind
	}
	c.Lines = b.layout(rng)
	return c
}
