package batch

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// decoders maps accepted encoding names to their decoders. UTF-8 input
// is passed through unchanged.
var decoders = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// decode wraps r so that it yields UTF-8 text from input in the named
// encoding.
func decode(r io.Reader, name string) (io.Reader, error) {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc.NewDecoder().Reader(r), nil
}
