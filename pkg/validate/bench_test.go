package validate

import (
	"strings"
	"testing"
)

// nestedDocument returns a well-formed document of the given depth with
// width sibling elements per level spread over many lines.
func nestedDocument(depth, width int) Document {
	var doc Document
	var walk func(d int)
	walk = func(d int) {
		for i := 0; i < width; i++ {
			doc = append(doc, "<DIV> some text <SPAN>more</SPAN>")
			if d > 0 {
				walk(d - 1)
			}
			doc = append(doc, "</DIV>")
		}
	}
	walk(depth)
	return doc
}

func BenchmarkCheck(b *testing.B) {
	sizes := []struct {
		name         string
		depth, width int
	}{
		{"tiny", 1, 2},
		{"small", 3, 3},
		{"medium", 5, 4},
		{"large", 7, 4},
	}
	for _, s := range sizes {
		doc := nestedDocument(s.depth, s.width)
		b.Run(s.name, func(b *testing.B) {
			b.SetBytes(int64(len(strings.Join(doc, "\n"))))
			for i := 0; i < b.N; i++ {
				if v := Check(doc); !v.IsOK() {
					b.Fatal(v)
				}
			}
		})
	}
}
