package dangerous

// ReadAll drives fn over the whole of in and requires it to consume
// every byte: any input left over once fn returns becomes an
// ExpectedLengthError{Exactly(0)} pointing at the trailing bytes. It
// is the usual top-level entry point for a hand-rolled byte parser.
func ReadAll[T any](in BytesInput, fn func(*BytesReader) (T, error)) (T, error) {
	r := NewBytesReader(in)
	v, err := fn(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if !r.AtEnd() {
		trailing := r.input
		return v, newExpectedLengthError("read all", Exactly(0), trailing)
	}
	return v, nil
}

// ReadAllStr is ReadAll for a [StringReader].
func ReadAllStr[T any](in StringInput, fn func(*StringReader) (T, error)) (T, error) {
	r := NewStringReader(in)
	v, err := fn(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if !r.AtEnd() {
		trailing := r.input
		return v, newExpectedLengthError("read all", Exactly(0), trailing)
	}
	return v, nil
}
