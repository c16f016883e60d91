// Package dangerous is a zero-copy, incremental parsing substrate for
// untrusted byte and text input.
//
// It is not a grammar or a codec. It is the plumbing every hand-rolled
// binary or text parser ends up writing by hand: an immutable view over
// a caller-owned buffer ([Input]), a transactional cursor over that view
// ([BytesReader], [StringReader]), a small pattern-matching abstraction
// used by splits ([Pattern]), and a hierarchical error model
// ([ExpectedValueError], [ExpectedLengthError], [ExpectedValidError]
// plus the catch-all [FatalError], [InvalidError] and [ExpectedError])
// that distinguishes retryable "need more data" failures from fatal
// ones.
//
// Start with [Bytes] or [Text] to wrap a buffer, then drive a reader
// over it with [ReadAll] or [ReadAllStr]:
//
//	in := dangerous.Bytes([]byte{0x01, 0x02, 0x03, 0x04})
//	v, err := dangerous.ReadAll(in, func(r *dangerous.BytesReader) (uint32, error) {
//		return r.ReadU32BE()
//	})
package dangerous

//go:generate go run ./internal/numgen -output numeric.go
