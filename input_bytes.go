package dangerous

import "bytes"

// BytesInput is an immutable view over a byte slice. Its token is a
// single byte.
type BytesInput struct {
	o     *origin
	r     Range
	bound Bound
}

var _ Input = BytesInput{}

func (in BytesInput) Bound() Bound { return in.bound }

func (in BytesInput) IntoBound() Input {
	in.bound = BoundBoth
	return in
}

func (in BytesInput) IntoUnboundEnd() Input {
	if in.bound == BoundStart {
		in.bound = BoundNone
	}
	return in
}

func (in BytesInput) ByteLen() int { return in.r.Len() }
func (in BytesInput) IsEmpty() bool { return in.r.Len() == 0 }

func (in BytesInput) IsWithin(parent Input) bool { return isWithin(in.o, in.r, parent) }

func (in BytesInput) SpanOf(parent Input) (Range, bool) { return spanOf(in.o, in.r, parent) }

func (in BytesInput) SpanOfNonEmpty(parent Input) (Range, bool) {
	if in.IsEmpty() {
		return Range{}, false
	}
	return in.SpanOf(parent)
}

func (in BytesInput) Display() InputDisplay {
	return InputDisplay{bytes: in.Bytes(), isText: false}
}

func (in BytesInput) IntoBytes() BytesInput { return in }

func (in BytesInput) IntoMaybeString() MaybeString { return MaybeString{bytes: &in} }

func (in BytesInput) origin() *origin { return in.o }
func (in BytesInput) span() Range     { return in.r }

// Bytes returns the bytes this view spans. The returned slice aliases
// the original backing buffer and must not be mutated.
func (in BytesInput) Bytes() []byte { return in.o.slice(in.r) }

// end returns an empty view positioned at the end of in, preserving
// its bound.
func (in BytesInput) end() BytesInput {
	in.r = Range{Start: in.r.End, End: in.r.End}
	return in
}

// splitAtByteUnchecked splits in at byte index mid. The caller must
// guarantee 0 <= mid <= in.ByteLen().
func (in BytesInput) splitAtByteUnchecked(mid int) (BytesInput, BytesInput) {
	head := in
	head.r = Range{Start: in.r.Start, End: in.r.Start + mid}
	tail := in
	tail.r = Range{Start: in.r.Start + mid, End: in.r.End}
	return head, tail
}

// splitAtOpt splits in at byte index mid. It returns ok=false if mid
// is out of range.
func (in BytesInput) splitAtOpt(mid int) (BytesInput, BytesInput, bool) {
	if mid < 0 || mid > in.ByteLen() {
		return BytesInput{}, BytesInput{}, false
	}
	head, tail := in.splitAtByteUnchecked(mid)
	return head, tail, true
}

// splitPrefixOpt splits prefix off the front of in if it matches,
// otherwise it returns in unchanged and ok=false.
func (in BytesInput) splitPrefixOpt(prefix []byte) (head, tail BytesInput, ok bool) {
	if len(prefix) > in.ByteLen() {
		return BytesInput{}, in, false
	}
	h, t := in.splitAtByteUnchecked(len(prefix))
	if !bytes.Equal(h.Bytes(), prefix) {
		return BytesInput{}, in, false
	}
	return h, t, true
}

// splitUntilOpt splits in at the first match of pattern, without
// consuming the match.
func (in BytesInput) splitUntilOpt(pattern Pattern) (head, tail BytesInput, ok bool) {
	idx, _, found := pattern.FindMatch(in)
	if !found {
		return BytesInput{}, in, false
	}
	h, t := in.splitAtByteUnchecked(idx)
	return h, t, true
}

// splitUntilConsumeOpt is like splitUntilOpt but also drops the
// matched bytes from the returned tail.
func (in BytesInput) splitUntilConsumeOpt(pattern Pattern) (head, tail BytesInput, ok bool) {
	idx, length, found := pattern.FindMatch(in)
	if !found {
		return BytesInput{}, in, false
	}
	h, _ := in.splitAtByteUnchecked(idx)
	_, t := in.splitAtByteUnchecked(idx + length)
	return h, t, true
}

// splitWhileOpt splits in at the first byte not matching pattern. If
// every byte matches, head is the whole input and tail is empty.
func (in BytesInput) splitWhileOpt(pattern Pattern) (head, tail BytesInput) {
	idx, found := pattern.FindReject(in)
	if !found {
		idx = in.ByteLen()
	}
	h, t := in.splitAtByteUnchecked(idx)
	return h, t
}

// splitConsumed computes, given a parent view and tail its remaining
// sub-view, the head region that was consumed. When tail's bound is
// BoundNone the head's end-bound is weakened too, since the boundary
// it ends at is provisional; tail is returned unchanged.
func splitConsumed(parent, tail BytesInput) (head, newTail BytesInput) {
	consumedLen := parent.ByteLen() - tail.ByteLen()
	head, _ = parent.splitAtByteUnchecked(consumedLen)
	newTail = tail
	if newTail.Bound() == BoundNone {
		head = head.IntoUnboundEnd().(BytesInput)
	}
	return head, newTail
}
