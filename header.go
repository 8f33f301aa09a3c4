package malloc

import "unsafe"

// header is the fixed-size prefix of every block this allocator manages,
// whether free, allocated, or a fencepost. prev/next only carry meaning
// while the block is on a free list; for an allocated block those bytes
// belong to the caller's payload.
//
// This is the one type in the package where raw pointer arithmetic is
// allowed to appear; every other file reaches the heap only through the
// accessors below.
type header struct {
	sizeAndState int64
	leftSize     int64
	next         *header
	prev         *header
}

// packSize combines a block's total size (header included) with its
// state into the single word myMalloc.c's header stored them in. Sizes
// are always multiples of wordSize, so the low bits are free for state.
func packSize(size int64, st blockState) int64 {
	return size | int64(st)
}

func (h *header) blockSize() int64 {
	return h.sizeAndState &^ 0x7
}

func (h *header) setBlockSize(size int64) {
	h.sizeAndState = packSize(size, h.blockState())
}

func (h *header) blockState() blockState {
	return blockState(h.sizeAndState & 0x7)
}

func (h *header) setBlockState(st blockState) {
	h.sizeAndState = packSize(h.blockSize(), st)
}

func (h *header) setSizeAndState(size int64, st blockState) {
	h.sizeAndState = packSize(size, st)
}

func (h *header) leftNeighborSize() int64 {
	return h.leftSize
}

func (h *header) setLeftNeighborSize(size int64) {
	h.leftSize = size
}

// leftNeighbor returns the block immediately to the left of h in address
// order. Valid for any h that is not the first fencepost of a chunk.
func (h *header) leftNeighbor() *header {
	return headerAt(uintptr(unsafe.Pointer(h)) - uintptr(h.leftSize))
}

// rightNeighbor returns the block immediately to the right of h in
// address order. Valid for any h that is not the last fencepost of a
// chunk.
func (h *header) rightNeighbor() *header {
	return headerAt(uintptr(unsafe.Pointer(h)) + uintptr(h.blockSize()))
}

// payload returns a pointer to the first byte after h, the address
// handed back to callers of Allocate.
func (h *header) payload() unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + uintptr(headerSize))
}

// payloadSize returns the number of usable bytes following h, given its
// current blockSize.
func (h *header) payloadSize() int64 {
	return h.blockSize() - headerSize
}

// headerFromPayload recovers the header preceding a pointer previously
// returned by Allocate.
func headerFromPayload(ptr unsafe.Pointer) *header {
	return headerAt(uintptr(ptr) - uintptr(headerSize))
}

// addrOfHeader returns the raw address of h, used when comparing a
// chunk boundary against an osmem.Source's reported addresses.
func addrOfHeader(h *header) uintptr {
	return uintptr(unsafe.Pointer(h))
}

// headerAt reinterprets an address as a *header. Every call site is
// required to have already established that addr lies on a block
// boundary inside heap memory this allocator owns.
func headerAt(addr uintptr) *header {
	return (*header)(unsafe.Pointer(addr))
}

// offsetHeader returns a pointer to the header that begins size bytes
// past h, used when carving a fresh block out of a larger one.
func offsetHeader(h *header, offset int64) *header {
	return headerAt(uintptr(unsafe.Pointer(h)) + uintptr(offset))
}
