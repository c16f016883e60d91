package dangerous

import (
	"bytes"
	"regexp"
	"strings"
)

// Pattern is anything able to answer two questions about an [Input]:
// where the next match begins and how long it is, and where the first
// token that does *not* match begins. Splits ([BytesReader.TakeUntil],
// [BytesReader.TakeWhile], ...) are built entirely on top of these two
// methods.
//
// FindMatch returning (0, 0, true) is reserved for "matches before
// every byte". Among the canonical patterns below, only an empty byte
// sequence or substring, or a regexp that matches the empty string,
// produces it.
type Pattern interface {
	// FindMatch returns the byte index of the first match in in and
	// its byte length.
	FindMatch(in Input) (index, length int, ok bool)
	// FindReject returns the byte index of the first token that does
	// not match in in. ok is false if every token matches.
	FindReject(in Input) (index int, ok bool)
}

// byteValuePattern matches a single expected byte.
type byteValuePattern byte

func (p byteValuePattern) FindMatch(in Input) (int, int, bool) {
	idx := bytes.IndexByte(inputBytesOf(in), byte(p))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, 1, true
}

func (p byteValuePattern) FindReject(in Input) (int, bool) {
	bs := inputBytesOf(in)
	for i, b := range bs {
		if b != byte(p) {
			return i, true
		}
	}
	return 0, false
}

func (p byteValuePattern) IntoValue() Value { return ByteValue(p) }

// BytePattern builds a [Pattern] matching a single expected byte.
func BytePattern(b byte) Pattern { return byteValuePattern(b) }

// runeValuePattern matches a single expected rune (text inputs only).
type runeValuePattern rune

func (p runeValuePattern) FindMatch(in Input) (int, int, bool) {
	for i, r := range inputStrOf(in) {
		if r == rune(p) {
			return i, runeByteLen(r), true
		}
	}
	return 0, 0, false
}

func (p runeValuePattern) FindReject(in Input) (int, bool) {
	str := inputStrOf(in)
	for i, r := range str {
		if r != rune(p) {
			return i, true
		}
	}
	return 0, false
}

func (p runeValuePattern) IntoValue() Value { return TextValue(string(rune(p))) }

// RunePattern builds a [Pattern] matching a single expected rune.
func RunePattern(r rune) Pattern { return runeValuePattern(r) }

// byteSequencePattern matches an exact byte sequence anywhere in the
// input (used by TakeUntil over []byte).
type byteSequencePattern []byte

func (p byteSequencePattern) FindMatch(in Input) (int, int, bool) {
	idx := byteIndex(inputBytesOf(in), []byte(p))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, len(p), true
}

func (p byteSequencePattern) FindReject(in Input) (int, bool) {
	return prefixReject(inputBytesOf(in), []byte(p))
}

func (p byteSequencePattern) IntoValue() Value { return BytesValue(p) }

// BytesPattern builds a [Pattern] matching an exact byte sequence
// anywhere in a byte input.
func BytesPattern(seq []byte) Pattern { return byteSequencePattern(seq) }

// textPattern matches an exact substring anywhere in a text input.
type textPattern string

func (p textPattern) FindMatch(in Input) (int, int, bool) {
	idx := stringIndex(inputStrOf(in), string(p))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, len(p), true
}

func (p textPattern) FindReject(in Input) (int, bool) {
	return prefixReject([]byte(inputStrOf(in)), []byte(p))
}

func (p textPattern) IntoValue() Value { return TextValue(p) }

// TextPattern builds a [Pattern] matching an exact substring anywhere
// in a text input.
func TextPattern(s string) Pattern { return textPattern(s) }

// BytePredicate matches or rejects a single byte. Wrapped by
// [BytesPredicate] for use with [BytesReader.TakeWhile] and
// [BytesReader.TakeUntil].
type BytePredicate func(b byte) bool

type bytePredicatePattern struct{ fn BytePredicate }

func (p bytePredicatePattern) FindMatch(in Input) (int, int, bool) {
	for i, b := range inputBytesOf(in) {
		if p.fn(b) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

func (p bytePredicatePattern) FindReject(in Input) (int, bool) {
	bs := inputBytesOf(in)
	for i, b := range bs {
		if !p.fn(b) {
			return i, true
		}
	}
	return 0, false
}

// BytesPredicate wraps a byte predicate function as a [Pattern].
func BytesPredicate(fn BytePredicate) Pattern { return bytePredicatePattern{fn} }

// RunePredicate matches or rejects a single rune. Used with
// [StringReader.TakeStrWhile].
type RunePredicate func(r rune) bool

type runePredicatePattern struct{ fn RunePredicate }

func (p runePredicatePattern) FindMatch(in Input) (int, int, bool) {
	for i, r := range inputStrOf(in) {
		if p.fn(r) {
			return i, runeByteLen(r), true
		}
	}
	return 0, 0, false
}

func (p runePredicatePattern) FindReject(in Input) (int, bool) {
	str := inputStrOf(in)
	for i, r := range str {
		if !p.fn(r) {
			return i, true
		}
	}
	return 0, false
}

// RunesPredicate wraps a rune predicate function as a [Pattern].
func RunesPredicate(fn RunePredicate) Pattern { return runePredicatePattern{fn} }

// Regexp adapts a compiled [regexp.Regexp] into a [Pattern]. FindMatch
// delegates to FindIndex; FindReject always reports no rejection since
// regexes describe matches, not a per-token membership test, so regex
// patterns are search-only.
func Regexp(re *regexp.Regexp) Pattern { return regexPattern{re} }

type regexPattern struct{ re *regexp.Regexp }

func (p regexPattern) FindMatch(in Input) (int, int, bool) {
	loc := p.re.FindIndex(inputBytesOf(in))
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1] - loc[0], true
}

func (p regexPattern) FindReject(in Input) (int, bool) {
	return 0, false
}

// --- helpers shared by the canonical patterns ---

func inputBytesOf(in Input) []byte {
	switch v := in.(type) {
	case BytesInput:
		return v.Bytes()
	case StringInput:
		return []byte(v.Str())
	default:
		return nil
	}
}

func inputStrOf(in Input) string {
	switch v := in.(type) {
	case StringInput:
		return v.Str()
	case BytesInput:
		return string(v.Bytes())
	default:
		return ""
	}
}

func firstByte(in Input) (byte, bool) {
	bs := inputBytesOf(in)
	if len(bs) == 0 {
		return 0, false
	}
	return bs[0], true
}

func firstRune(in Input) (rune, bool) {
	str := inputStrOf(in)
	if str == "" {
		return 0, false
	}
	for _, r := range str {
		return r, true
	}
	return 0, false
}

func runeByteLen(r rune) int { return len(string(r)) }

// byteIndex finds the first occurrence of needle in haystack. The
// naive (default) implementation is a straightforward reference
// double loop; built with the simd tag, it instead delegates to
// bytes.Index, which uses a hardware-accelerated search on supported
// architectures. See DESIGN.md for the tradeoff.
func byteIndex(haystack, needle []byte) int {
	if simdSearch {
		return bytes.Index(haystack, needle)
	}
	return naiveByteIndex(haystack, needle)
}

func stringIndex(haystack, needle string) int {
	if simdSearch {
		return strings.Index(haystack, needle)
	}
	return naiveByteIndex([]byte(haystack), []byte(needle))
}

func naiveByteIndex(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// prefixReject treats pattern as a cycle of acceptable bytes and
// returns the index of the first haystack byte that breaks the cycle.
// It gives sequence/text patterns a sensible (if rarely used)
// FindReject: TakeWhile is ordinarily driven by a single-token or
// predicate pattern, not a multi-byte sequence.
func prefixReject(haystack, pattern []byte) (int, bool) {
	if len(pattern) == 0 {
		return 0, false
	}
	for i, b := range haystack {
		if b != pattern[i%len(pattern)] {
			return i, true
		}
	}
	return 0, false
}
