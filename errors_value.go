package dangerous

import "fmt"

// ExpectedValueError is raised when a reader primitive expected a
// specific literal value and the input diverged from it: a
// [BytesReader.Consume] / [StringReader.Consume] miss, a failed
// prefix split, or a TakeUntil that never found its pattern before
// the input ran out.
type ExpectedValueError struct {
	errorBase
	Operation string
	Actual    []byte
	Expected  Value
}

var (
	_ WithContext     = (*ExpectedValueError)(nil)
	_ RetryClassifier = (*ExpectedValueError)(nil)
)

func newExpectedValueError(operation string, actual []byte, expected Value, span Input) *ExpectedValueError {
	return &ExpectedValueError{errorBase: newErrorBase(span), Operation: operation, Actual: actual, Expected: expected}
}

// Error implements the error interface.
func (e *ExpectedValueError) Error() string {
	return fmt.Sprintf("%s: expected %s, found % x", e.Operation, e.Expected, e.Actual)
}

// WithContext implements [WithContext].
func (e *ExpectedValueError) WithContext(in Input, ctx Context) error {
	e.withContext(in, ctx)
	return e
}

// IsFatal classifies the error: fatal iff the expected value is not a
// prefix of the observed span (divergence already occurred);
// otherwise retryable (unless the recorded input is fully bounded).
func (e *ExpectedValueError) IsFatal() bool {
	if !valueHasPrefix(e.Expected, e.SpanBytes()) {
		return true
	}
	_, retryable := e.ToRetryRequirement()
	return !retryable
}

// ToRetryRequirement implements [RetryClassifier].
func (e *ExpectedValueError) ToRetryRequirement() (RetryRequirement, bool) {
	if !valueHasPrefix(e.Expected, e.SpanBytes()) {
		return RetryRequirement{}, false
	}
	if e.boundFatalOverride() {
		return RetryRequirement{}, false
	}
	return RetryRequirementFromHadAndNeeded(e.span.ByteLen(), e.Expected.ByteLen())
}
