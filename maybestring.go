package dangerous

// MaybeString remembers whether an error's input came from a
// [BytesInput] or a [StringInput], without forcing UTF-8 validation on
// the bytes variant. Exactly one of the two fields is non-nil.
type MaybeString struct {
	bytes *BytesInput
	str   *StringInput
}

// IsString reports whether this union holds a StringInput (and is
// therefore guaranteed valid UTF-8).
func (m MaybeString) IsString() bool { return m.str != nil }

// Input returns the wrapped view as a plain Input.
func (m MaybeString) Input() Input {
	if m.str != nil {
		return *m.str
	}
	return *m.bytes
}

// Bytes returns the raw bytes underlying either variant.
func (m MaybeString) Bytes() []byte {
	if m.str != nil {
		return []byte(m.str.Str())
	}
	return m.bytes.Bytes()
}

// withInput returns a copy of m with its wrapped view replaced by in,
// preserving which variant is held. It panics if in's concrete type
// does not match the variant m already holds - callers only ever
// invoke this with a wider view of the same origin, produced by
// WithContext.
func (m MaybeString) withInput(in Input) MaybeString {
	if m.str != nil {
		s := in.(StringInput)
		return MaybeString{str: &s}
	}
	b := in.(BytesInput)
	return MaybeString{bytes: &b}
}

// Display renders the wrapped view for diagnostics.
func (m MaybeString) Display() InputDisplay { return m.Input().Display() }
