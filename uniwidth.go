//go:build !nounicode

package dangerous

import "github.com/mattn/go-runewidth"

// unicodeEnabled reports whether this build measures real display
// widths, for [Config] to surface at runtime.
const unicodeEnabled = true

// runeDisplayWidth returns the number of terminal columns r occupies,
// used to align a diagnostic caret under multi-byte runes.
func runeDisplayWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// stringDisplayWidth returns the total column width of s.
func stringDisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
