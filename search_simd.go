//go:build simd

package dangerous

// simdSearch is true under the simd build tag: byte/text sequence
// patterns delegate to bytes.Index / strings.Index, which use a
// hardware-accelerated search on architectures the Go runtime
// supports (amd64, arm64).
const simdSearch = true
