package dangerous

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesReaderTakeAndPeek(t *testing.T) {
	r := NewBytesReader(Bytes([]byte("hello")))

	peeked, err := r.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("he"), peeked.Bytes())
	assert.Equal(t, 5, r.Remaining(), "Peek must not consume")

	taken, err := r.Take(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("he"), taken.Bytes())
	assert.Equal(t, 3, r.Remaining())
}

func TestBytesReaderTakeFailureLeavesReaderUntouched(t *testing.T) {
	r := NewBytesReader(Bytes([]byte("hi")))
	_, err := r.Take(10)
	require.Error(t, err)
	assert.Equal(t, 2, r.Remaining())

	var lenErr *ExpectedLengthError
	require.ErrorAs(t, err, &lenErr)
}

func TestBytesReaderConsume(t *testing.T) {
	r := NewBytesReader(Bytes([]byte("GET /x")))
	require.NoError(t, r.Consume([]byte("GET ")))
	assert.Equal(t, "/x", string(r.TakeRemaining().Bytes()))

	r2 := NewBytesReader(Bytes([]byte("POST /x")))
	err := r2.Consume([]byte("GET "))
	require.Error(t, err)
	var valErr *ExpectedValueError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 7, r2.Remaining(), "failed Consume must not advance the reader")
}

func TestBytesReaderConsumeOpt(t *testing.T) {
	r := NewBytesReader(Bytes([]byte("abc")))
	assert.False(t, r.ConsumeOpt([]byte("xyz")))
	assert.True(t, r.ConsumeOpt([]byte("ab")))
	assert.Equal(t, "c", string(r.TakeRemaining().Bytes()))
}

func TestBytesReaderVerify(t *testing.T) {
	r := NewBytesReader(Bytes([]byte{0x01, 0x02}))
	v, err := r.Verify(1, "non-zero byte", func(b []byte) bool { return b[0] != 0 })
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), v.Bytes()[0])

	r2 := NewBytesReader(Bytes([]byte{0x00}))
	_, err = r2.Verify(1, "non-zero byte", func(b []byte) bool { return b[0] != 0 })
	require.Error(t, err)
	var validErr *ExpectedValidError
	require.ErrorAs(t, err, &validErr)
	assert.Equal(t, 1, r2.Remaining(), "failed Verify must not advance the reader")
}

func TestBytesReaderTakeWhile(t *testing.T) {
	r := NewBytesReader(Bytes([]byte("aaabbb")))
	got := r.TakeWhile(BytesPredicate(func(b byte) bool { return b == 'a' }))
	assert.Equal(t, "aaa", string(got.Bytes()))
	assert.Equal(t, "bbb", string(r.TakeRemaining().Bytes()))
}

func TestBytesReaderTakeUntilAndConsume(t *testing.T) {
	r := NewBytesReader(Bytes([]byte("key:value")))
	head, err := r.TakeUntil(BytePattern(':'))
	require.NoError(t, err)
	assert.Equal(t, "key", string(head.Bytes()))

	require.NoError(t, r.Skip(1))
	assert.Equal(t, "value", string(r.TakeRemaining().Bytes()))

	r2 := NewBytesReader(Bytes([]byte("nocolonhere")))
	_, err = r2.TakeUntil(BytePattern(':'))
	require.Error(t, err)
}

func TestBytesReaderContextAnnotatesError(t *testing.T) {
	r := NewBytesReader(Bytes([]byte("ab")))
	_, err := BytesReaderContext(r, Context{Operation: "decode header"}, func(r *BytesReader) (int, error) {
		return 0, r.Skip(10)
	})
	require.Error(t, err)
	var lenErr *ExpectedLengthError
	require.ErrorAs(t, err, &lenErr)
	ctx := lenErr.Context()
	require.Len(t, ctx, 1)
	assert.Equal(t, "decode header", ctx[0].Operation)
}

func TestBytesReaderRecoverRewindsOnFailure(t *testing.T) {
	r := NewBytesReader(Bytes([]byte("abc")))
	_, err := BytesReaderRecover(r, func(r *BytesReader) (BytesInput, error) {
		_, _ = r.Take(1)
		return r.Take(10)
	})
	require.Error(t, err)
	assert.Equal(t, 3, r.Remaining(), "Recover must rewind to the pre-call position")
}

func TestReadAllRejectsTrailingInput(t *testing.T) {
	in := Bytes([]byte("abcd"))
	_, err := ReadAll(in, func(r *BytesReader) (byte, error) {
		return r.ReadU8()
	})
	require.Error(t, err)
}

func TestReadAllSucceedsWhenFullyConsumed(t *testing.T) {
	in := Bytes([]byte{0x00, 0x00, 0x00, 0x2a})
	v, err := ReadAll(in, func(r *BytesReader) (uint32, error) {
		return r.ReadU32BE()
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)
}
