//go:build debug

package malloc

import "unsafe"

// poisonByte fills freshly carved blocks in debug builds so that reads
// of uninitialized or already-freed memory stand out under inspection,
// instead of silently returning leftover zero bytes.
const poisonByte = 0xCD

// initBlock runs over a newly carved allocation's payload before it is
// handed to the caller.
func initBlock(h *header) {
	n := h.payloadSize()
	if n <= 0 {
		return
	}
	dst := unsafe.Slice((*byte)(h.payload()), n)
	for i := range dst {
		dst[i] = poisonByte
	}
}
