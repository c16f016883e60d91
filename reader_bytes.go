package dangerous

// BytesReader is a transactional cursor over a [BytesInput]. Every
// method that can fail computes its result against a local copy of the
// current view and only commits it back into the reader on success;
// a failed read leaves the reader exactly where it started, so a
// caller can freely try one parse, see it fail, and fall back to
// another without any explicit save/restore dance.
type BytesReader struct {
	input BytesInput
}

// NewBytesReader returns a reader positioned at the start of in.
func NewBytesReader(in BytesInput) *BytesReader { return &BytesReader{input: in} }

// AtEnd reports whether every byte of the input has been consumed.
func (r *BytesReader) AtEnd() bool { return r.input.IsEmpty() }

// Remaining returns the number of unconsumed bytes.
func (r *BytesReader) Remaining() int { return r.input.ByteLen() }

// Input returns the reader's current, unconsumed view.
func (r *BytesReader) Input() BytesInput { return r.input }

// Peek returns the next n bytes without consuming them. It fails with
// an [ExpectedLengthError] if fewer than n bytes remain.
func (r *BytesReader) Peek(n int) (BytesInput, error) {
	head, _, ok := r.input.splitAtOpt(n)
	if !ok {
		return BytesInput{}, newExpectedLengthError("peek", AtLeast(n), r.input)
	}
	return head, nil
}

// PeekOpt is like Peek but reports ok=false instead of an error.
func (r *BytesReader) PeekOpt(n int) (BytesInput, bool) {
	head, _, ok := r.input.splitAtOpt(n)
	return head, ok
}

// Take consumes and returns the next n bytes. It fails with an
// [ExpectedLengthError] if fewer than n bytes remain, leaving the
// reader untouched.
func (r *BytesReader) Take(n int) (BytesInput, error) {
	head, tail, ok := r.input.splitAtOpt(n)
	if !ok {
		return BytesInput{}, newExpectedLengthError("take", AtLeast(n), r.input)
	}
	r.input = tail
	return head, nil
}

// TakeRemaining consumes and returns every remaining byte.
func (r *BytesReader) TakeRemaining() BytesInput {
	rest := r.input
	r.input = r.input.end()
	return rest
}

// Skip consumes and discards the next n bytes.
func (r *BytesReader) Skip(n int) error {
	_, err := r.Take(n)
	return err
}

// Consume requires that literal appears next in the input, consuming
// it. It fails with an [ExpectedValueError] otherwise.
func (r *BytesReader) Consume(literal []byte) error {
	head, tail, ok := r.input.splitPrefixOpt(literal)
	if !ok {
		n := len(literal)
		if n > r.input.ByteLen() {
			n = r.input.ByteLen()
		}
		actual, _ := r.Peek(n)
		return newExpectedValueError("consume", actual.Bytes(), BytesValue(literal), r.input)
	}
	_ = head
	r.input = tail
	return nil
}

// ConsumeOpt is like Consume but reports ok=false instead of an error.
func (r *BytesReader) ConsumeOpt(literal []byte) bool {
	_, tail, ok := r.input.splitPrefixOpt(literal)
	if !ok {
		return false
	}
	r.input = tail
	return true
}

// Verify takes the next n bytes and requires fn to accept them,
// returning the consumed view. A false verdict produces an
// [ExpectedValidError] naming what, and leaves the reader untouched.
func (r *BytesReader) Verify(n int, what string, fn func([]byte) bool) (BytesInput, error) {
	head, err := r.Peek(n)
	if err != nil {
		return BytesInput{}, err
	}
	if !fn(head.Bytes()) {
		return BytesInput{}, newExpectedValidError("verify", what, nil, r.input)
	}
	return r.Take(n)
}

// TakeWhile consumes the longest prefix for which pattern matches
// every token, which may be empty.
func (r *BytesReader) TakeWhile(pattern Pattern) BytesInput {
	head, tail := r.input.splitWhileOpt(pattern)
	r.input = tail
	return head
}

// TakeUntil consumes up to, but not including, the first match of
// pattern. It fails with an [ExpectedValueError] if pattern never
// matches before the input is exhausted.
func (r *BytesReader) TakeUntil(pattern Pattern) (BytesInput, error) {
	head, tail, ok := r.input.splitUntilOpt(pattern)
	if !ok {
		return BytesInput{}, newExpectedValueError("take until", r.input.Bytes(), patternValue(pattern), r.input)
	}
	r.input = tail
	return head, nil
}

// TakeUntilConsume is like TakeUntil but also consumes the match
// itself, returning only the bytes before it.
func (r *BytesReader) TakeUntilConsume(pattern Pattern) (BytesInput, error) {
	head, tail, ok := r.input.splitUntilConsumeOpt(pattern)
	if !ok {
		return BytesInput{}, newExpectedValueError("take until", r.input.Bytes(), patternValue(pattern), r.input)
	}
	r.input = tail
	return head, nil
}

// patternValue describes pattern as an expected [Value] for error
// reporting, falling back to a plain description for patterns (such
// as predicates) that carry no natural byte representation.
func patternValue(pattern Pattern) Value {
	if iv, ok := pattern.(IntoValue); ok {
		return iv.IntoValue()
	}
	return TextValue("<pattern>")
}

// Context scopes fn: on failure, if the returned error implements
// [WithContext], ctx is pushed onto it annotated with the reader's
// view as it stood when Context was entered, then the enriched error
// is returned. A successful fn leaves the reader wherever it stopped.
func (r *BytesReader) Context(ctx Context, fn func(*BytesReader) error) error {
	entry := r.input
	if err := fn(r); err != nil {
		if wc, ok := err.(WithContext); ok {
			return wc.WithContext(entry, ctx)
		}
		return err
	}
	return nil
}

// BytesReaderContext is [BytesReader.Context] for callbacks that also
// produce a value, since Go methods cannot carry their own type
// parameters.
func BytesReaderContext[T any](r *BytesReader, ctx Context, fn func(*BytesReader) (T, error)) (T, error) {
	entry := r.input
	v, err := fn(r)
	if err != nil {
		if wc, ok := err.(WithContext); ok {
			return v, wc.WithContext(entry, ctx)
		}
		return v, err
	}
	return v, nil
}

// BytesReaderRecover runs fn, rewinding the reader to its pre-call
// position if fn fails, and returns fn's zero value alongside the
// error in that case.
func BytesReaderRecover[T any](r *BytesReader, fn func(*BytesReader) (T, error)) (T, error) {
	entry := r.input
	v, err := fn(r)
	if err != nil {
		r.input = entry
		var zero T
		return zero, err
	}
	return v, nil
}

// BytesReaderRecoverIf is like BytesReaderRecover but only rewinds
// when classify(err) is true; otherwise the reader is left wherever
// fn left it (typically used to let fatal errors propagate with
// whatever span they captured, while transient ones get another try
// elsewhere).
func BytesReaderRecoverIf[T any](r *BytesReader, fn func(*BytesReader) (T, error), classify func(error) bool) (T, error) {
	entry := r.input
	v, err := fn(r)
	if err != nil && classify(err) {
		r.input = entry
		var zero T
		return zero, err
	}
	return v, err
}
