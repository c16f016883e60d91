package dangerous

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringReaderTakeAndPeek(t *testing.T) {
	r := NewStringReader(Text("héllo"))

	peeked, err := r.Peek(1)
	require.NoError(t, err)
	assert.Equal(t, "h", peeked.Str())
	assert.Equal(t, 6, r.Remaining(), "Peek must not consume")

	_, err = r.Peek(2)
	require.Error(t, err, "splitting inside the two-byte é must fail")
}

func TestStringReaderReadRune(t *testing.T) {
	r := NewStringReader(Text("héllo"))

	ru, err := r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'h', ru)

	ru, err = r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'é', ru)

	assert.Equal(t, "llo", r.TakeRemaining().Str())
}

func TestStringReaderReadRuneOnEmptyInput(t *testing.T) {
	r := NewStringReader(Text(""))
	_, err := r.ReadRune()
	require.Error(t, err)
	var lenErr *ExpectedLengthError
	require.ErrorAs(t, err, &lenErr)
}

func TestStringReaderConsume(t *testing.T) {
	r := NewStringReader(Text("key=value"))
	require.NoError(t, r.Consume("key"))
	require.NoError(t, r.Consume("="))
	assert.Equal(t, "value", r.TakeRemaining().Str())

	r2 := NewStringReader(Text("other"))
	err := r2.Consume("key")
	require.Error(t, err)
	var valErr *ExpectedValueError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 5, r2.Remaining(), "failed Consume must not advance the reader")
}

func TestStringReaderConsumeOpt(t *testing.T) {
	r := NewStringReader(Text("abc"))
	assert.False(t, r.ConsumeOpt("xyz"))
	assert.True(t, r.ConsumeOpt("ab"))
	assert.Equal(t, "c", r.TakeRemaining().Str())
}

func TestStringReaderVerify(t *testing.T) {
	r := NewStringReader(Text("ok"))
	v, err := r.Verify(2, "known status", func(s string) bool { return s == "ok" })
	require.NoError(t, err)
	assert.Equal(t, "ok", v.Str())

	r2 := NewStringReader(Text("no"))
	_, err = r2.Verify(2, "known status", func(s string) bool { return s == "ok" })
	require.Error(t, err)
	var validErr *ExpectedValidError
	require.ErrorAs(t, err, &validErr)
	assert.Equal(t, 2, r2.Remaining())
}

func TestStringReaderTakeStrWhile(t *testing.T) {
	r := NewStringReader(Text("123abc"))
	digits := r.TakeStrWhile(func(c rune) bool { return c >= '0' && c <= '9' })
	assert.Equal(t, "123", digits.Str())
	assert.Equal(t, "abc", r.TakeRemaining().Str())
}

func TestStringReaderTakeUntilAndConsume(t *testing.T) {
	r := NewStringReader(Text("name=ed"))
	head, err := r.TakeUntil(TextPattern("="))
	require.NoError(t, err)
	assert.Equal(t, "name", head.Str())

	require.NoError(t, r.Consume("="))
	assert.Equal(t, "ed", r.TakeRemaining().Str())

	r2 := NewStringReader(Text("noequalshere"))
	_, err = r2.TakeUntil(TextPattern("="))
	require.Error(t, err)
}

func TestStringReaderContextAnnotatesError(t *testing.T) {
	r := NewStringReader(Text("ab"))
	_, err := StringReaderContext(r, Context{Operation: "decode pair"}, func(r *StringReader) (int, error) {
		return 0, r.Consume("xyz")
	})
	require.Error(t, err)
	ctx := err.(interface{ Context() []Context }).Context()
	require.Len(t, ctx, 1)
	assert.Equal(t, "decode pair", ctx[0].Operation)
}

func TestStringReaderRecoverRewindsOnFailure(t *testing.T) {
	r := NewStringReader(Text("abc"))
	_, err := StringReaderRecover(r, func(r *StringReader) (StringInput, error) {
		_, _ = r.Take(1)
		return r.Take(10)
	})
	require.Error(t, err)
	assert.Equal(t, 3, r.Remaining(), "Recover must rewind to the pre-call position")
}

func TestStringReaderRecoverIfOnlyRewindsWhenClassified(t *testing.T) {
	r := NewStringReader(Text("abc"))
	alwaysFatal := func(error) bool { return false }
	_, err := StringReaderRecoverIf(r, func(r *StringReader) (StringInput, error) {
		_, _ = r.Take(1)
		return r.Take(10)
	}, alwaysFatal)
	require.Error(t, err)
	assert.Equal(t, 2, r.Remaining(), "classify=false must leave the reader where fn left it")
}

func TestReadAllStrRejectsTrailingInput(t *testing.T) {
	in := Text("ab,cd")
	_, err := ReadAllStr(in, func(r *StringReader) (string, error) {
		head, err := r.Take(2)
		if err != nil {
			return "", err
		}
		return head.Str(), nil
	})
	require.Error(t, err)
}

func TestReadAllStrSucceedsWhenFullyConsumed(t *testing.T) {
	in := Text("ab")
	v, err := ReadAllStr(in, func(r *StringReader) (string, error) {
		head, err := r.Take(2)
		if err != nil {
			return "", err
		}
		return head.Str(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ab", v)
}
