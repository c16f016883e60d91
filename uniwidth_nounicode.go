//go:build nounicode

package dangerous

// unicodeEnabled reports whether this build measures real display
// widths, for [Config] to surface at runtime.
const unicodeEnabled = false

// runeDisplayWidth falls back to counting every rune as one column
// when built without Unicode width tables.
func runeDisplayWidth(r rune) int { return 1 }

// stringDisplayWidth falls back to counting bytes (not runes): wholly
// avoiding any UTF-8 decoding keeps the nounicode build free of the
// unicode tables entirely.
func stringDisplayWidth(s string) int { return len(s) }
