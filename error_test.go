package dangerous

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedLengthErrorShortfallIsRetryable(t *testing.T) {
	span := Bytes([]byte("ab")) // 2 bytes, need 4
	err := newExpectedLengthError("take", AtLeast(4), span)

	assert.False(t, err.IsFatal())
	req, retryable := err.ToRetryRequirement()
	require.True(t, retryable)
	assert.Equal(t, 2, req.NeededMore())
}

func TestExpectedLengthErrorUpperBoundViolationIsFatal(t *testing.T) {
	span := Bytes([]byte("abcde")) // 5 bytes, allowed at most 3
	err := newExpectedLengthError("take", AtMost(3), span)

	assert.True(t, err.IsFatal())
	_, retryable := err.ToRetryRequirement()
	assert.False(t, retryable)
}

func TestExpectedLengthErrorExactlyHadEqualsNeededIsNotRetryable(t *testing.T) {
	span := Bytes([]byte("abcd")) // 4 bytes, exactly 4 required: already satisfied
	err := newExpectedLengthError("take", Exactly(4), span)

	_, retryable := err.ToRetryRequirement()
	assert.False(t, retryable, "had == needed means the shortfall case never applies")
}

func TestExpectedLengthErrorBoundBothOverridesToFatal(t *testing.T) {
	span := Bytes([]byte("ab")).IntoBound()
	err := newExpectedLengthError("take", AtLeast(4), span)

	assert.True(t, err.IsFatal(), "a fully bounded input can never grow, so a shortfall is fatal")
	_, retryable := err.ToRetryRequirement()
	assert.False(t, retryable)
}

func TestExpectedValueErrorDivergedIsFatal(t *testing.T) {
	span := Bytes([]byte("xyz"))
	err := newExpectedValueError("consume", []byte("xyz"), BytesValue([]byte("abc")), span)
	assert.True(t, err.IsFatal(), "the observed bytes already diverged from what was expected")
}

func TestExpectedValueErrorPrefixMatchIsRetryable(t *testing.T) {
	span := Bytes([]byte("ab"))
	err := newExpectedValueError("consume", []byte("ab"), BytesValue([]byte("abcd")), span)
	assert.False(t, err.IsFatal())
	req, retryable := err.ToRetryRequirement()
	require.True(t, retryable)
	assert.Equal(t, 2, req.NeededMore())
}

func TestExpectedValidErrorWithNoRetryOpinionIsFatal(t *testing.T) {
	span := Bytes([]byte("x"))
	err := newExpectedValidError("verify", "checksum", nil, span)
	assert.True(t, err.IsFatal())
	_, retryable := err.ToRetryRequirement()
	assert.False(t, retryable)
}

func TestExpectedValidErrorSurfacesGivenRetryRequirement(t *testing.T) {
	span := Bytes([]byte("x"))
	retry, _ := RetryRequirementFromHadAndNeeded(1, 4)
	err := newExpectedValidError("verify", "checksum", &retry, span)
	assert.False(t, err.IsFatal())
	got, retryable := err.ToRetryRequirement()
	require.True(t, retryable)
	assert.Equal(t, 3, got.NeededMore())
}

func TestWithContextPushesOntoChainAndWidensInput(t *testing.T) {
	parent := Bytes([]byte("abcdef"))
	head, tail, ok := parent.splitAtOpt(2)
	require.True(t, ok)
	_ = tail

	err := newExpectedLengthError("take", AtLeast(10), head)
	werr := err.WithContext(parent, Context{Operation: "outer scope"})

	var lenErr *ExpectedLengthError
	require.ErrorAs(t, werr, &lenErr)
	ctx := lenErr.Context()
	require.Len(t, ctx, 1)
	assert.Equal(t, "outer scope", ctx[0].Operation)
	assert.Equal(t, []byte("abcdef"), lenErr.Input().Bytes())
}

func TestFatalErrorIsAlwaysFatal(t *testing.T) {
	fe := FatalError{}
	assert.True(t, fe.IsFatal())
	_, retryable := fe.ToRetryRequirement()
	assert.False(t, retryable)
}

func TestAsInvalidKeepsOnlyTheRetryRequirement(t *testing.T) {
	span := Bytes([]byte("ab"))
	lenErr := newExpectedLengthError("take", AtLeast(4), span)

	ie := AsInvalid(lenErr)
	assert.False(t, ie.IsFatal())
	req, retryable := ie.ToRetryRequirement()
	require.True(t, retryable)
	assert.Equal(t, 2, req.NeededMore())
}

func TestAsInvalidOnFatalErrorHasNoRetryRequirement(t *testing.T) {
	span := Bytes([]byte("xyz"))
	valErr := newExpectedValueError("consume", []byte("xyz"), BytesValue([]byte("abc")), span)

	ie := AsInvalid(valErr)
	assert.True(t, ie.IsFatal())
	_, retryable := ie.ToRetryRequirement()
	assert.False(t, retryable)
}

func TestExpectedErrorForwardsToInner(t *testing.T) {
	inner := newExpectedLengthError("take", AtLeast(4), Bytes([]byte("ab")))
	ee := &ExpectedError{Inner: inner}

	assert.Equal(t, inner.Error(), ee.Error())
	_, retryable := ee.ToRetryRequirement()
	assert.True(t, retryable)
	assert.Equal(t, inner.Span(), ee.Span())
}

func TestRetryRequirementFromHadAndNeededBoundary(t *testing.T) {
	_, ok := RetryRequirementFromHadAndNeeded(4, 4)
	assert.False(t, ok, "had == needed is already satisfied, not a retry case")

	req, ok := RetryRequirementFromHadAndNeeded(1, 4)
	require.True(t, ok)
	assert.Equal(t, 3, req.NeededMore())
}

func TestErrorsAsRecoversConcreteType(t *testing.T) {
	var err error = newExpectedValueError("consume", nil, ByteValue('x'), Bytes([]byte{}))
	var valErr *ExpectedValueError
	require.True(t, errors.As(err, &valErr))
}
