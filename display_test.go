package dangerous

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputDisplayTextRendersQuoted(t *testing.T) {
	d := Text("hi\n").Display()
	assert.True(t, d.IsText())
	assert.Equal(t, `"hi\n"`, d.String())
}

func TestInputDisplayBytesRendersHexDump(t *testing.T) {
	d := Bytes([]byte{0x01, 0xab}).Display()
	assert.False(t, d.IsText())
	assert.Equal(t, "[01 ab]", d.String())
}

func TestInputDisplayBytesAccessor(t *testing.T) {
	d := Bytes([]byte("xy")).Display()
	assert.Equal(t, []byte("xy"), d.Bytes())
}

func TestInputDisplayCaretWidthForText(t *testing.T) {
	// A CJK rune displays as 2 columns even though it is a single
	// codepoint of 3 bytes, so the caret must be wider than the rune
	// count but still shorter than the byte count.
	d := Text("好").Display()
	assert.Equal(t, strings.Repeat("^", 2), d.Caret())
}

func TestInputDisplayCaretWidthForBytes(t *testing.T) {
	d := Bytes([]byte{0x01, 0x02}).Display()
	assert.Equal(t, "^^^^^", d.Caret(), `mirrors the "xx xx" rendering width`)
}
