package lib

import "unsafe"

// Memcpy copies a block of length ln from src to dst. Useful when the
// memory block was obtained outside the Go runtime, where a []byte slice
// header cannot be constructed directly.
func Memcpy(dst, src unsafe.Pointer, ln int) int {
	if ln == 0 {
		return 0
	}
	srcsl := unsafe.Slice((*byte)(src), ln)
	dstsl := unsafe.Slice((*byte)(dst), ln)
	return copy(dstsl, srcsl)
}

// AbsInt64 returns the absolute value of x. Except for -2^63, where the
// returned value is the same as the input.
func AbsInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
