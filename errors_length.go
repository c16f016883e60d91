package dangerous

import "fmt"

// requirementKind discriminates the four shapes a length Requirement
// can take.
type requirementKind int

const (
	reqAtLeast requirementKind = iota
	reqAtMost
	reqExactly
	reqBetween
)

// Requirement describes how many bytes an operation needed, in one of
// four shapes.
type Requirement struct {
	kind     requirementKind
	min, max int
}

// AtLeast requires at least n bytes.
func AtLeast(n int) Requirement { return Requirement{kind: reqAtLeast, min: n} }

// AtMost requires at most n bytes.
func AtMost(n int) Requirement { return Requirement{kind: reqAtMost, max: n} }

// Exactly requires exactly n bytes.
func Exactly(n int) Requirement { return Requirement{kind: reqExactly, min: n, max: n} }

// Between requires between min and max bytes, inclusive.
func Between(min, max int) Requirement { return Requirement{kind: reqBetween, min: min, max: max} }

// String implements fmt.Stringer.
func (r Requirement) String() string {
	switch r.kind {
	case reqAtLeast:
		return fmt.Sprintf("at least %d byte(s)", r.min)
	case reqAtMost:
		return fmt.Sprintf("at most %d byte(s)", r.max)
	case reqExactly:
		return fmt.Sprintf("exactly %d byte(s)", r.min)
	default:
		return fmt.Sprintf("between %d and %d byte(s)", r.min, r.max)
	}
}

// hasUpperBound reports whether r can be violated by having too much
// input.
func (r Requirement) hasUpperBound() bool {
	return r.kind == reqAtMost || r.kind == reqExactly || r.kind == reqBetween
}

// upperViolated reports whether spanLen exceeds r's upper bound, if it
// has one.
func (r Requirement) upperViolated(spanLen int) bool {
	return r.hasUpperBound() && spanLen > r.max
}

// lowerBound returns the minimum byte count r requires, used to
// compute a retry requirement.
func (r Requirement) lowerBound() int {
	switch r.kind {
	case reqAtMost:
		return 0
	default:
		return r.min
	}
}

// ExpectedLengthError is raised whenever a reader primitive needed more
// (or was given strictly more than its allowed) bytes than the current
// input view provides: insufficient/excess take, peek, split_at, or
// trailing input left over at ReadAll.
type ExpectedLengthError struct {
	errorBase
	Operation string
	Len       Requirement
}

var (
	_ WithContext     = (*ExpectedLengthError)(nil)
	_ RetryClassifier = (*ExpectedLengthError)(nil)
)

func newExpectedLengthError(operation string, len Requirement, span Input) *ExpectedLengthError {
	return &ExpectedLengthError{errorBase: newErrorBase(span), Operation: operation, Len: len}
}

// Error implements the error interface.
func (e *ExpectedLengthError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %d byte(s)", e.Operation, e.Len, e.span.ByteLen())
}

// WithContext implements [WithContext].
func (e *ExpectedLengthError) WithContext(in Input, ctx Context) error {
	e.withContext(in, ctx)
	return e
}

// IsFatal classifies the error: a violated upper bound (too much
// input) is always fatal; a shortfall against the lower bound is
// retryable unless the recorded input is fully bounded. A shortfall
// that has not yet violated an upper bound stays retryable: there may
// still be room for the extra bytes to arrive.
func (e *ExpectedLengthError) IsFatal() bool {
	if e.Len.upperViolated(e.span.ByteLen()) {
		return true
	}
	_, retryable := e.ToRetryRequirement()
	return !retryable
}

// ToRetryRequirement implements [RetryClassifier].
func (e *ExpectedLengthError) ToRetryRequirement() (RetryRequirement, bool) {
	if e.Len.upperViolated(e.span.ByteLen()) {
		return RetryRequirement{}, false
	}
	if e.boundFatalOverride() {
		return RetryRequirement{}, false
	}
	return RetryRequirementFromHadAndNeeded(e.span.ByteLen(), e.Len.lowerBound())
}
