package malloc

import (
	"unsafe"

	"github.com/oberoisehej/Malloc/log"
)

// roundRequest applies the sizing rule from the public contract: a
// zero request is rejected by the caller before this is reached;
// everything else is floored to minPayload and rounded up to wordSize.
func roundRequest(size int64) int64 {
	if size < minPayload {
		size = minPayload
	}
	if rem := size % wordSize; rem != 0 {
		size += wordSize - rem
	}
	return size
}

// allocate services one Allocate call. a.mu must be held.
func (a *Arena) allocate(size int64) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	if err := a.ensureInit(); err != nil {
		return nil
	}

	needed := roundRequest(size) + headerSize
	for {
		blk, fromLast, prevNode, nextNode := a.findFit(needed)
		if blk != nil {
			return a.carve(blk, needed, fromLast, prevNode, nextNode)
		}
		if !a.extend() {
			return nil
		}
	}
}

// findFit locates a free block of at least needed bytes, unlinking it
// from its list. fromLast, prevNode, nextNode describe its former
// position in the last (oversized) list, needed by carve to splice a
// leftover remainder back into the same slot.
func (a *Arena) findFit(needed int64) (blk *header, fromLast bool, prevNode, nextNode *header) {
	start := a.fl.classFor(needed)
	last := a.fl.n() - 1

	for c := start; c <= last; c++ {
		if c < last {
			if a.fl.isEmpty(c) {
				continue
			}
			s := a.fl.sentinel(c)
			found := s.next
			unlink(found)
			return found, false, nil, nil
		}

		s := a.fl.sentinel(c)
		for n := s.next; n != s; n = n.next {
			if n.blockSize() >= needed {
				prev, next := n.prev, n.next
				unlink(n)
				return n, true, prev, next
			}
		}
	}
	return nil, false, nil, nil
}

// carve splits blk (already unlinked) into an allocated block of
// exactly needed bytes plus, if the remainder is itself a legal block,
// a free block reinserted into the appropriate list.
func (a *Arena) carve(blk *header, needed int64, fromLast bool, prevNode, nextNode *header) unsafe.Pointer {
	extra := blk.blockSize() - needed
	var allocated *header

	if extra >= headerSize {
		low := blk
		low.setSizeAndState(extra, stateUnallocated)

		high := offsetHeader(low, extra)
		high.setSizeAndState(needed, stateAllocated)
		high.setLeftNeighborSize(extra)
		high.rightNeighbor().setLeftNeighborSize(needed)

		lowClass := a.fl.classFor(extra)
		if fromLast && lowClass == a.fl.n()-1 {
			insertAfter(prevNode, low)
		} else {
			a.fl.insertFront(lowClass, low)
		}
		allocated = high
	} else {
		blk.setBlockState(stateAllocated)
		allocated = blk
	}

	initBlock(allocated)
	return allocated.payload()
}

// extend acquires one more chunk from the OS, fusing it with the
// previous chunk when contiguous, and links the resulting free block
// into the last list. Reports false when the OS refuses the request.
func (a *Arena) extend() bool {
	addr, inner, right := a.acquireChunk()
	if addr == 0 {
		return false
	}

	var free *header
	if contiguous(addr, addrOfHeader(a.lastFencePost)) {
		free = fuseAdjacentChunks(a.fl, a.lastFencePost, inner, right)
	} else {
		free = inner
		a.osChunks = append(a.osChunks, addr)
		if int64(len(a.osChunks)) > a.maxOsChunks {
			log.Warnf("malloc: chunk count %d exceeds tracked maximum %d\n", len(a.osChunks), a.maxOsChunks)
		}
	}

	a.fl.insertFront(a.fl.n()-1, free)
	a.lastFencePost = right
	return true
}
