package dangerous

import "fmt"

// FatalError is the smallest possible error: it forgets the span, the
// input, and any context, and is always fatal. Callers who only care
// about success/failure and want zero per-error footprint convert to
// it via [AsFatal].
type FatalError struct{}

var (
	_ RetryClassifier = FatalError{}
	_ WithContext     = FatalError{}
)

func (FatalError) Error() string                             { return "invalid input" }
func (FatalError) IsFatal() bool                              { return true }
func (FatalError) ToRetryRequirement() (RetryRequirement, bool) { return RetryRequirement{}, false }

// WithContext implements [WithContext]: FatalError keeps no input or
// context, so it is returned unchanged.
func (e FatalError) WithContext(Input, Context) error { return e }

// InvalidError keeps only a retry requirement, discarding span,
// input, and context. Callers who only need to decide whether to ask
// for more bytes convert to it via [AsInvalid].
type InvalidError struct {
	retry *RetryRequirement
}

var (
	_ RetryClassifier = InvalidError{}
	_ WithContext     = InvalidError{}
)

// WithContext implements [WithContext]: InvalidError keeps no input or
// context, so it is returned unchanged.
func (e InvalidError) WithContext(Input, Context) error { return e }

func (e InvalidError) Error() string {
	if e.retry == nil {
		return "invalid input"
	}
	return fmt.Sprintf("invalid input: %s", *e.retry)
}

func (e InvalidError) IsFatal() bool { return e.retry == nil }

func (e InvalidError) ToRetryRequirement() (RetryRequirement, bool) {
	if e.retry == nil {
		return RetryRequirement{}, false
	}
	return *e.retry, true
}

// structuredError is implemented by the three detail-rich error
// variants; it lets the catch-all conversions share one code path.
type structuredError interface {
	WithContext
	RetryClassifier
	errorOperation() string
	errorExpected() fmt.Stringer
}

func (e *ExpectedLengthError) errorOperation() string    { return e.Operation }
func (e *ExpectedLengthError) errorExpected() fmt.Stringer { return e.Len }

func (e *ExpectedValueError) errorOperation() string      { return e.Operation }
func (e *ExpectedValueError) errorExpected() fmt.Stringer { return e.Expected }

func (e *ExpectedValidError) errorOperation() string { return e.Operation }
func (e *ExpectedValidError) errorExpected() fmt.Stringer {
	return stringerFunc(func() string { return e.What })
}

type stringerFunc func() string

func (f stringerFunc) String() string { return f() }

// ExpectedError wraps one of the three structured variants alongside
// its own context chain, seeded from the variant's own
// (operation, expected) pair as its leaf node. It is the full
// diagnostic catch-all: callers who want a backtrace convert to it via
// [AsExpected].
type ExpectedError struct {
	Inner structuredError
	ctx   ContextChain
}

var (
	_ WithContext     = (*ExpectedError)(nil)
	_ RetryClassifier = (*ExpectedError)(nil)
)

// Error implements the error interface.
func (e *ExpectedError) Error() string { return e.Inner.Error() }

// WithContext implements [WithContext]: it forwards to the inner
// error so the inner error's own input-widening logic applies, then
// records the same push on its own outer chain.
func (e *ExpectedError) WithContext(in Input, ctx Context) error {
	e.Inner.WithContext(in, ctx)
	e.ctx.push(ctx)
	return e
}

func (e *ExpectedError) IsFatal() bool { return e.Inner.IsFatal() }

func (e *ExpectedError) ToRetryRequirement() (RetryRequirement, bool) {
	return e.Inner.ToRetryRequirement()
}

// Backtrace returns the accumulated context outermost-to-innermost,
// including the leaf node seeded from the wrapped variant's own
// operation/expected pair.
func (e *ExpectedError) Backtrace() []Context {
	return e.ctx.Backtrace()
}

// Context is an alias for Backtrace, satisfying the same accessor
// shape the three structured variants expose via errorBase.
func (e *ExpectedError) Context() []Context { return e.Backtrace() }

// Span forwards to the wrapped variant's own span.
func (e *ExpectedError) Span() Input { return e.Inner.(interface{ Span() Input }).Span() }

// AsFatal converts any structured error into the zero-size [FatalError].
func AsFatal(err error) FatalError { return FatalError{} }

// AsInvalid converts any [RetryClassifier] into an [InvalidError],
// keeping only the retry requirement.
func AsInvalid(err RetryClassifier) InvalidError {
	if retry, ok := err.ToRetryRequirement(); ok {
		r := retry
		return InvalidError{retry: &r}
	}
	return InvalidError{}
}

// AsExpected wraps one of the three structured error variants in an
// [ExpectedError], seeding its context chain with the variant's own
// (operation, expected) pair as the leaf node.
func AsExpected(err structuredError) *ExpectedError {
	e := &ExpectedError{Inner: err}
	e.ctx.push(Context{Operation: err.errorOperation(), Expected: err.errorExpected()})
	return e
}
