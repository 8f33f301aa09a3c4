package malloc

import (
	"unsafe"
)

// bufSource is an osmem.Source backed by one pinned Go byte slice, used
// so tests can control chunk placement (contiguous or not) without
// depending on what the kernel's mmap happens to return, while every
// address handed out still points at real, valid memory.
type bufSource struct {
	buf     []byte
	cursor  int
	lastEnd uintptr
	nextGap int
}

func newBufSource(size int) *bufSource {
	return &bufSource{buf: make([]byte, size)}
}

func (b *bufSource) base() uintptr {
	return uintptr(unsafe.Pointer(&b.buf[0]))
}

// extendWithGap hands out the next size bytes of the backing buffer, starting
// gap bytes after the cursor. A gap of 0 keeps chunks contiguous; a
// positive gap forces the allocator to treat the next chunk as distinct.
func (b *bufSource) extendWithGap(size, gap int) (uintptr, error) {
	b.cursor += gap
	addr := b.base() + uintptr(b.cursor)
	b.cursor += size
	b.lastEnd = addr + uintptr(size)
	return addr, nil
}

func (b *bufSource) Extend(size int) (uintptr, error) {
	gap := b.nextGap
	b.nextGap = 0
	return b.extendWithGap(size, gap)
}

// forceGapOnNextExtend makes the single next call to Extend leave a gap
// of n bytes before the new region, breaking contiguity with whatever
// was extended last.
func (b *bufSource) forceGapOnNextExtend(n int) {
	b.nextGap = n
}

func (b *bufSource) LastEnd() uintptr {
	return b.lastEnd
}

// newTestArena builds a small Arena over a bufSource sized for the
// given number of chunks of chunkSize bytes each, with N_LISTS small
// enough that tests can drive blocks into the last list deliberately.
func newTestArena(nLists, chunkSize, numChunks int64) (*Arena, *bufSource) {
	src := newBufSource(int(chunkSize)*int(numChunks) + 4096)
	a := withSource(nil, src)
	a.nLists = nLists
	a.arenaSize = chunkSize
	a.fl = newFreelists(nLists)
	return a, src
}
