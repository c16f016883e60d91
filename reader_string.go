package dangerous

import "unicode/utf8"

// StringReader is a transactional cursor over a [StringInput]. It
// shares BytesReader's commit-on-success discipline, and additionally
// refuses a Take/Peek boundary that would bisect a codepoint.
// TakeWhile/TakeUntil cut wherever their pattern reports, which is a
// rune boundary for rune, text and rune-predicate patterns but not
// necessarily for byte patterns.
type StringReader struct {
	input StringInput
}

// NewStringReader returns a reader positioned at the start of in.
func NewStringReader(in StringInput) *StringReader { return &StringReader{input: in} }

// AtEnd reports whether every byte of the input has been consumed.
func (r *StringReader) AtEnd() bool { return r.input.IsEmpty() }

// Remaining returns the number of unconsumed bytes.
func (r *StringReader) Remaining() int { return r.input.ByteLen() }

// Input returns the reader's current, unconsumed view.
func (r *StringReader) Input() StringInput { return r.input }

// Peek returns the next n bytes without consuming them. It fails with
// an [ExpectedLengthError] if fewer than n bytes remain or n does not
// land on a rune boundary.
func (r *StringReader) Peek(n int) (StringInput, error) {
	head, _, ok := r.input.splitAtOpt(n)
	if !ok {
		return StringInput{}, newExpectedLengthError("peek", AtLeast(n), r.input)
	}
	return head, nil
}

// PeekOpt is like Peek but reports ok=false instead of an error.
func (r *StringReader) PeekOpt(n int) (StringInput, bool) {
	head, _, ok := r.input.splitAtOpt(n)
	return head, ok
}

// Take consumes and returns the next n bytes.
func (r *StringReader) Take(n int) (StringInput, error) {
	head, tail, ok := r.input.splitAtOpt(n)
	if !ok {
		return StringInput{}, newExpectedLengthError("take", AtLeast(n), r.input)
	}
	r.input = tail
	return head, nil
}

// TakeRemaining consumes and returns every remaining byte.
func (r *StringReader) TakeRemaining() StringInput {
	rest := r.input
	r.input = r.input.end()
	return rest
}

// Skip consumes and discards the next n bytes.
func (r *StringReader) Skip(n int) error {
	_, err := r.Take(n)
	return err
}

// ReadRune consumes and returns the next codepoint.
func (r *StringReader) ReadRune() (rune, error) {
	str := r.input.Str()
	if str == "" {
		return 0, newExpectedLengthError("read rune", AtLeast(1), r.input)
	}
	ru, size := utf8.DecodeRuneInString(str)
	if _, err := r.Take(size); err != nil {
		return 0, err
	}
	return ru, nil
}

// Consume requires that literal appears next in the input, consuming
// it. It fails with an [ExpectedValueError] otherwise.
func (r *StringReader) Consume(literal string) error {
	_, tail, ok := r.input.splitPrefixOpt(literal)
	if !ok {
		n := len(literal)
		if n > r.input.ByteLen() {
			n = r.input.ByteLen()
		}
		actual, _ := r.Peek(n)
		return newExpectedValueError("consume", []byte(actual.Str()), TextValue(literal), r.input)
	}
	r.input = tail
	return nil
}

// ConsumeOpt is like Consume but reports ok=false instead of an error.
func (r *StringReader) ConsumeOpt(literal string) bool {
	_, tail, ok := r.input.splitPrefixOpt(literal)
	if !ok {
		return false
	}
	r.input = tail
	return true
}

// Verify takes the next n bytes and requires fn to accept them.
func (r *StringReader) Verify(n int, what string, fn func(string) bool) (StringInput, error) {
	head, err := r.Peek(n)
	if err != nil {
		return StringInput{}, err
	}
	if !fn(head.Str()) {
		return StringInput{}, newExpectedValidError("verify", what, nil, r.input)
	}
	return r.Take(n)
}

// TakeWhile consumes the longest prefix for which pattern matches
// every rune, which may be empty.
func (r *StringReader) TakeWhile(pattern Pattern) StringInput {
	head, tail := r.input.splitWhileOpt(pattern)
	r.input = tail
	return head
}

// TakeStrWhile consumes the longest prefix of runes accepted by fn.
func (r *StringReader) TakeStrWhile(fn RunePredicate) StringInput {
	return r.TakeWhile(RunesPredicate(fn))
}

// TakeUntil consumes up to, but not including, the first match of
// pattern.
func (r *StringReader) TakeUntil(pattern Pattern) (StringInput, error) {
	head, tail, ok := r.input.splitUntilOpt(pattern)
	if !ok {
		return StringInput{}, newExpectedValueError("take until", []byte(r.input.Str()), patternValue(pattern), r.input)
	}
	r.input = tail
	return head, nil
}

// TakeUntilConsume is like TakeUntil but also consumes the match.
func (r *StringReader) TakeUntilConsume(pattern Pattern) (StringInput, error) {
	head, tail, ok := r.input.splitUntilConsumeOpt(pattern)
	if !ok {
		return StringInput{}, newExpectedValueError("take until", []byte(r.input.Str()), patternValue(pattern), r.input)
	}
	r.input = tail
	return head, nil
}

// Context scopes fn the same way [BytesReader.Context] does.
func (r *StringReader) Context(ctx Context, fn func(*StringReader) error) error {
	entry := r.input
	if err := fn(r); err != nil {
		if wc, ok := err.(WithContext); ok {
			return wc.WithContext(entry, ctx)
		}
		return err
	}
	return nil
}

// StringReaderContext is [StringReader.Context] for value-returning
// callbacks.
func StringReaderContext[T any](r *StringReader, ctx Context, fn func(*StringReader) (T, error)) (T, error) {
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

// StringReaderRecover runs fn, rewinding the reader on failure.
func StringReaderRecover[T any](r *StringReader, fn func(*StringReader) (T, error)) (T, error) {
	entry := r.input
	v, err := fn(r)
	if err != nil {
		r.input = entry
		var zero T
		return zero, err
	}
	return v, nil
}

// StringReaderRecoverIf is like StringReaderRecover but only rewinds
// when classify(err) is true.
func StringReaderRecoverIf[T any](r *StringReader, fn func(*StringReader) (T, error), classify func(error) bool) (T, error) {
	entry := r.input
	v, err := fn(r)
	if err != nil && classify(err) {
		r.input = entry
		var zero T
		return zero, err
	}
	return v, err
}
