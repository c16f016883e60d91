package dangerous

import (
	"fmt"
	"strings"
)

// InputDisplay is a small handle on an input's bytes, sufficient for
// [fmt.Stringer] rendering without pulling in the full colourized
// formatter.
type InputDisplay struct {
	bytes  []byte
	isText bool
}

// String implements fmt.Stringer. Text input renders as a quoted Go
// string; byte input renders as a hex dump.
func (d InputDisplay) String() string {
	if d.isText {
		return fmt.Sprintf("%q", string(d.bytes))
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range d.bytes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	b.WriteByte(']')
	return b.String()
}

// IsText reports whether the underlying input was text.
func (d InputDisplay) IsText() bool { return d.isText }

// Bytes returns the raw bytes backing the display, regardless of
// whether they came from a byte or text input.
func (d InputDisplay) Bytes() []byte { return d.bytes }

// Caret returns a run of '^' as wide as d's rendering would occupy in
// a terminal, one column per display width rather than one per byte,
// so a rune underlines as the number of columns it occupies (one for
// "é", two for a wide CJK rune) regardless of its byte length.
func (d InputDisplay) Caret() string {
	width := 1
	if d.isText {
		width = stringDisplayWidth(string(d.bytes))
	} else if n := len(d.bytes); n > 0 {
		width = n*3 - 1 // "xx xx xx": two hex digits plus a separating space
	}
	if width < 1 {
		width = 1
	}
	return strings.Repeat("^", width)
}
