package malloc

// installChunk formats a freshly obtained region of size bytes starting
// at addr into a chunk: a left fencepost, one UNALLOCATED block spanning
// everything in between, and a right fencepost. It does not touch any
// free list; the caller decides whether the inner block gets linked in
// directly or fused with a neighboring chunk first.
func installChunk(addr uintptr, size int64) (left, inner, right *header) {
	left = headerAt(addr)
	left.setSizeAndState(headerSize, stateFencepost)
	left.setLeftNeighborSize(0)

	inner = offsetHeader(left, headerSize)
	innerSize := size - 2*headerSize
	inner.setSizeAndState(innerSize, stateUnallocated)
	inner.setLeftNeighborSize(headerSize)

	right = offsetHeader(inner, innerSize)
	right.setSizeAndState(headerSize, stateFencepost)
	right.setLeftNeighborSize(innerSize)

	return left, inner, right
}

// contiguous reports whether a chunk whose left fencepost starts at
// newLeft immediately follows the chunk whose right fencepost starts at
// prevRightFencepost (i.e. no gap between the end of that fencepost and
// the start of the new one). Never assumed, always checked: the OS
// source is free to place a new mapping anywhere.
func contiguous(newLeft, prevRightFencepost uintptr) bool {
	return newLeft == prevRightFencepost+uintptr(headerSize)
}

// fuseAdjacentChunks merges a newly acquired, contiguous chunk into the
// one that precedes it, consuming both fenceposts at the seam. prevRight
// is the previous chunk's right fencepost; newInner and newRight are the
// fresh chunk's inner block and right fencepost as returned by
// installChunk. The block returned is the single free region that now
// spans (at least) the two former fenceposts and the fresh chunk's
// inner block; it has already been unlinked from fl if it was free
// before the fuse.
func fuseAdjacentChunks(fl *freelists, prevRight, newInner, newRight *header) *header {
	left := prevRight.leftNeighbor()

	var merged *header
	if left.blockState() == stateUnallocated {
		unlink(left)
		left.setSizeAndState(left.blockSize()+2*headerSize+newInner.blockSize(), stateUnallocated)
		merged = left
	} else {
		prevRight.setSizeAndState(newInner.blockSize()+2*headerSize, stateUnallocated)
		merged = prevRight
	}

	// Both fusion branches must patch the new chunk's right fencepost;
	// whichever block absorbed newInner is now its left neighbor.
	newRight.setLeftNeighborSize(merged.blockSize())
	return merged
}
