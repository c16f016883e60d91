package dangerous

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesInputBasics(t *testing.T) {
	in := Bytes([]byte("hello"))
	assert.Equal(t, 5, in.ByteLen())
	assert.False(t, in.IsEmpty())
	assert.Equal(t, BoundStart, in.Bound())
	assert.Equal(t, []byte("hello"), in.Bytes())
}

func TestBytesInputIntoBoundAndUnboundEnd(t *testing.T) {
	in := Bytes([]byte("hi"))
	bounded := in.IntoBound()
	assert.Equal(t, BoundBoth, bounded.Bound())

	unbounded := in.IntoUnboundEnd()
	assert.Equal(t, BoundNone, unbounded.Bound())

	// Once BoundNone, a further IntoUnboundEnd is a no-op.
	stillUnbounded := unbounded.IntoUnboundEnd()
	assert.Equal(t, BoundNone, stillUnbounded.Bound())
}

func TestBytesInputIsWithinAndSpanOf(t *testing.T) {
	parent := Bytes([]byte("hello world"))
	head, tail, ok := parent.splitAtOpt(5)
	require.True(t, ok)

	assert.True(t, head.IsWithin(parent))
	assert.True(t, tail.IsWithin(parent))

	span, ok := head.SpanOf(parent)
	require.True(t, ok)
	assert.Equal(t, Range{0, 5}, span)

	other := Bytes([]byte("hello world"))
	assert.False(t, head.IsWithin(other), "distinct origins must never compare as within")
}

func TestStringInputRejectsNonBoundaySplit(t *testing.T) {
	in := Text("héllo") // é is two bytes (0xC3 0xA9)
	_, _, ok := in.splitAtOpt(2)
	assert.False(t, ok, "splitting inside a multi-byte rune must fail")

	_, _, ok = in.splitAtOpt(3)
	assert.True(t, ok)
}

func TestMaybeStringRoundtrip(t *testing.T) {
	b := Bytes([]byte("abc"))
	ms := b.IntoMaybeString()
	assert.False(t, ms.IsString())
	assert.Equal(t, []byte("abc"), ms.Bytes())

	s := Text("abc")
	ms2 := s.IntoMaybeString()
	assert.True(t, ms2.IsString())
	assert.Equal(t, []byte("abc"), ms2.Bytes())
}

func TestSplitConsumedWeakensBoundOnExhaustion(t *testing.T) {
	parent := Bytes([]byte("abc")).IntoUnboundEnd().(BytesInput)
	tail := parent.end()
	head, newTail := splitConsumed(parent, tail)
	assert.Equal(t, BoundNone, head.Bound())
	assert.Equal(t, 3, head.ByteLen())
	assert.Equal(t, 0, newTail.ByteLen())
}
