package dangerous

// Input is the immutable, zero-copy view shared by [BytesInput] and
// [StringInput]. It never mutates its backing storage: every "advance"
// or "split" produces a new view over a sub-region of the same
// backing buffer.
//
// The two concrete variants are a closed set: code outside this
// package consumes the interface but cannot implement it, since the
// interface includes unexported methods.
type Input interface {
	// Bound reports the caller's claim about data availability past
	// the edges of this view.
	Bound() Bound
	// IntoBound returns a copy of this view with its bound set to
	// BoundBoth: an assertion that no more data will ever arrive.
	IntoBound() Input
	// IntoUnboundEnd returns a copy of this view with its end bound
	// weakened to BoundNone (if currently BoundStart) or left as-is.
	IntoUnboundEnd() Input
	// ByteLen returns the number of bytes this view spans.
	ByteLen() int
	// IsEmpty reports whether ByteLen() == 0.
	IsEmpty() bool
	// IsWithin reports whether this view's byte range lies inside
	// parent's byte range, within the same backing buffer.
	IsWithin(parent Input) bool
	// SpanOf returns the offsets of this view inside parent, if this
	// view is within parent.
	SpanOf(parent Input) (Range, bool)
	// SpanOfNonEmpty is like SpanOf but also requires this view to be
	// non-empty.
	SpanOfNonEmpty(parent Input) (Range, bool)
	// Display renders this view for diagnostics.
	Display() InputDisplay
	// IntoBytes returns a byte-oriented view of the same bytes,
	// discarding any UTF-8 guarantee.
	IntoBytes() BytesInput
	// IntoMaybeString wraps this view in the MaybeString union,
	// remembering whether it carries a validated-UTF-8 guarantee.
	IntoMaybeString() MaybeString

	origin() *origin
	span() Range
}

// Bytes wraps source as a BytesInput with an initial BoundStart bound:
// the start is anchored, the end may still grow in a future pass.
func Bytes(source []byte) BytesInput {
	return BytesInput{o: newByteOrigin(source), r: Range{0, len(source)}, bound: BoundStart}
}

// Text wraps source as a StringInput with an initial BoundStart bound.
// It does not check that source is valid UTF-8.
func Text(source string) StringInput {
	return StringInput{o: newTextOrigin(source), r: Range{0, len(source)}, bound: BoundStart}
}

func isWithin(selfOrigin *origin, selfSpan Range, parent Input) bool {
	return selfOrigin == parent.origin() && parent.span().Contains(selfSpan)
}

func spanOf(selfOrigin *origin, selfSpan Range, parent Input) (Range, bool) {
	if !isWithin(selfOrigin, selfSpan, parent) {
		return Range{}, false
	}
	base := parent.span().Start
	return Range{Start: selfSpan.Start - base, End: selfSpan.End - base}, true
}
