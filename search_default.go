//go:build !simd

package dangerous

// simdSearch is false by default: byte/text sequence patterns use the
// naive reference search in byteIndex/stringIndex. Build with -tags
// simd to switch to the stdlib's hardware-accelerated bytes.Index /
// strings.Index instead.
const simdSearch = false
