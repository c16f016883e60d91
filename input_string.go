package dangerous

import (
	"strings"
	"unicode/utf8"
)

// StringInput is an immutable view over a string. Its token is a
// single rune. [Text] does not check that its source is valid UTF-8.
// splitAtOpt refuses to split off a rune boundary; the pattern-driven
// splits cut wherever the pattern reports, which is a rune boundary
// for rune, text and rune-predicate patterns but not necessarily for
// byte patterns.
type StringInput struct {
	o     *origin
	r     Range
	bound Bound
}

var _ Input = StringInput{}

func (in StringInput) Bound() Bound { return in.bound }

func (in StringInput) IntoBound() Input {
	in.bound = BoundBoth
	return in
}

func (in StringInput) IntoUnboundEnd() Input {
	if in.bound == BoundStart {
		in.bound = BoundNone
	}
	return in
}

func (in StringInput) ByteLen() int  { return in.r.Len() }
func (in StringInput) IsEmpty() bool { return in.r.Len() == 0 }

func (in StringInput) IsWithin(parent Input) bool { return isWithin(in.o, in.r, parent) }

func (in StringInput) SpanOf(parent Input) (Range, bool) { return spanOf(in.o, in.r, parent) }

func (in StringInput) SpanOfNonEmpty(parent Input) (Range, bool) {
	if in.IsEmpty() {
		return Range{}, false
	}
	return in.SpanOf(parent)
}

func (in StringInput) Display() InputDisplay {
	return InputDisplay{bytes: []byte(in.Str()), isText: true}
}

func (in StringInput) IntoBytes() BytesInput {
	return BytesInput{o: newByteOrigin([]byte(in.Str())), r: Range{0, in.ByteLen()}, bound: in.bound}
}

func (in StringInput) IntoMaybeString() MaybeString { return MaybeString{str: &in} }

func (in StringInput) origin() *origin { return in.o }
func (in StringInput) span() Range     { return in.r }

// Str returns the string this view spans. The returned string aliases
// the original backing buffer.
func (in StringInput) Str() string { return in.o.str(in.r) }

func (in StringInput) end() StringInput {
	in.r = Range{Start: in.r.End, End: in.r.End}
	return in
}

// isCharBoundaryAbs reports whether byte offset absOff (relative to
// the start of in's backing buffer) sits on a rune boundary.
func (in StringInput) isCharBoundaryAbs(absOff int) bool {
	full := in.o.text
	if absOff == 0 || absOff == len(full) {
		return true
	}
	if absOff < 0 || absOff > len(full) {
		return false
	}
	return utf8.RuneStart(full[absOff])
}

func (in StringInput) splitAtByteUnchecked(mid int) (StringInput, StringInput) {
	head := in
	head.r = Range{Start: in.r.Start, End: in.r.Start + mid}
	tail := in
	tail.r = Range{Start: in.r.Start + mid, End: in.r.End}
	return head, tail
}

// splitAtOpt splits in at byte index mid, which must land on a rune
// boundary. It returns ok=false if mid is out of range or bisects a
// codepoint.
func (in StringInput) splitAtOpt(mid int) (StringInput, StringInput, bool) {
	if mid < 0 || mid > in.ByteLen() {
		return StringInput{}, StringInput{}, false
	}
	if !in.isCharBoundaryAbs(in.r.Start + mid) {
		return StringInput{}, StringInput{}, false
	}
	head, tail := in.splitAtByteUnchecked(mid)
	return head, tail, true
}

func (in StringInput) splitPrefixOpt(prefix string) (head, tail StringInput, ok bool) {
	if len(prefix) > in.ByteLen() {
		return StringInput{}, in, false
	}
	if !strings.HasPrefix(in.Str(), prefix) {
		return StringInput{}, in, false
	}
	h, t := in.splitAtByteUnchecked(len(prefix))
	return h, t, true
}

func (in StringInput) splitUntilOpt(pattern Pattern) (head, tail StringInput, ok bool) {
	idx, _, found := pattern.FindMatch(in)
	if !found {
		return StringInput{}, in, false
	}
	h, t := in.splitAtByteUnchecked(idx)
	return h, t, true
}

func (in StringInput) splitUntilConsumeOpt(pattern Pattern) (head, tail StringInput, ok bool) {
	idx, length, found := pattern.FindMatch(in)
	if !found {
		return StringInput{}, in, false
	}
	h, _ := in.splitAtByteUnchecked(idx)
	_, t := in.splitAtByteUnchecked(idx + length)
	return h, t, true
}

func (in StringInput) splitWhileOpt(pattern Pattern) (head, tail StringInput) {
	idx, found := pattern.FindReject(in)
	if !found {
		idx = in.ByteLen()
	}
	h, t := in.splitAtByteUnchecked(idx)
	return h, t
}

func splitConsumedString(parent, tail StringInput) (head, newTail StringInput) {
	consumedLen := parent.ByteLen() - tail.ByteLen()
	head, _ = parent.splitAtByteUnchecked(consumedLen)
	newTail = tail
	if newTail.Bound() == BoundNone {
		head = head.IntoUnboundEnd().(StringInput)
	}
	return head, newTail
}
