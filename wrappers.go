package malloc

import (
	"math"
	"unsafe"

	"github.com/oberoisehej/Malloc/lib"
)

// Calloc allocates room for n elements of size bytes each and zeroes the
// result. A product that overflows is rejected with a nil return before
// any allocation is attempted; the reference implementation this
// allocator replaces left that case undefined.
func (a *Arena) Calloc(n, size int64) unsafe.Pointer {
	if n <= 0 || size <= 0 {
		return nil
	}
	if n > math.MaxInt64/size {
		return nil
	}

	total := n * size
	ptr := a.Allocate(total)
	if ptr == nil {
		return nil
	}

	dst := unsafe.Slice((*byte)(ptr), total)
	for i := range dst {
		dst[i] = 0
	}
	return ptr
}

// Realloc resizes the allocation at ptr. A nil ptr behaves as
// Allocate(size); a zero size behaves as Free(ptr). Otherwise a fresh
// block is allocated and min(old user size, size) bytes are copied
// before the old block is freed — the reference implementation this
// replaces copied size unconditionally, which read past the old block
// whenever the caller grew the allocation.
func (a *Arena) Realloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	if ptr == nil {
		return a.Allocate(size)
	}
	if size <= 0 {
		a.Free(ptr)
		return nil
	}

	oldHeader := headerFromPayload(ptr)
	oldSize := oldHeader.payloadSize()

	newPtr := a.Allocate(size)
	if newPtr == nil {
		return nil
	}

	n := oldSize
	if size < n {
		n = size
	}
	lib.Memcpy(newPtr, ptr, int(n))

	a.Free(ptr)
	return newPtr
}
