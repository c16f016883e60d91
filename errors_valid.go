package dangerous

import "fmt"

// ExpectedValidError is raised when a sub-parser rejected content
// semantically rather than structurally. In this package it is raised
// only by [BytesReader.Verify] / [StringReader.Verify] when the
// caller's predicate returns false; no string read checks UTF-8
// validity, and no split runs a user predicate that produces it.
type ExpectedValidError struct {
	errorBase
	Operation        string
	What             string
	retryRequirement *RetryRequirement
}

var (
	_ WithContext     = (*ExpectedValidError)(nil)
	_ RetryClassifier = (*ExpectedValidError)(nil)
)

// newExpectedValidError builds an ExpectedValidError. retry is nil
// when the sub-parser offers no opinion on whether more input could
// help (in which case the error is fatal).
func newExpectedValidError(operation, what string, retry *RetryRequirement, span Input) *ExpectedValidError {
	return &ExpectedValidError{errorBase: newErrorBase(span), Operation: operation, What: what, retryRequirement: retry}
}

// Error implements the error interface.
func (e *ExpectedValidError) Error() string {
	return fmt.Sprintf("%s: invalid %s", e.Operation, e.What)
}

// WithContext implements [WithContext].
func (e *ExpectedValidError) WithContext(in Input, ctx Context) error {
	e.withContext(in, ctx)
	return e
}

// IsFatal implements [RetryClassifier].
func (e *ExpectedValidError) IsFatal() bool {
	_, retryable := e.ToRetryRequirement()
	return !retryable
}

// ToRetryRequirement implements [RetryClassifier]: it simply surfaces
// whatever the content validator decided.
func (e *ExpectedValidError) ToRetryRequirement() (RetryRequirement, bool) {
	if e.retryRequirement == nil {
		return RetryRequirement{}, false
	}
	if e.boundFatalOverride() {
		return RetryRequirement{}, false
	}
	return *e.retryRequirement, true
}
