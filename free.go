package malloc

import (
	"fmt"
	"unsafe"

	"github.com/oberoisehej/Malloc/log"
)

// free services one Free call. a.mu must be held.
func (a *Arena) free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	blk := headerFromPayload(ptr)
	switch blk.blockState() {
	case stateUnallocated:
		log.Fatalf("malloc: double free at %#x\n", addrOfHeader(blk))
		panic(fmt.Errorf("%w: block at %#x already free", ErrDoubleFree, addrOfHeader(blk)))
	case stateFencepost:
		return
	}

	blk.setBlockState(stateUnallocated)
	working := blk
	last := a.fl.n() - 1

	var (
		mergedLeft, mergedRight   bool
		leftWasLast, rightWasLast bool
		leftPrev, rightPrev       *header
	)

	if right := working.rightNeighbor(); right.blockState() == stateUnallocated {
		rightWasLast = a.fl.classFor(right.blockSize()) == last
		rightPrev = right.prev
		unlink(right)
		working.setBlockSize(working.blockSize() + right.blockSize())
		working.rightNeighbor().setLeftNeighborSize(working.blockSize())
		mergedRight = true
	}

	if left := working.leftNeighbor(); left.blockState() == stateUnallocated {
		leftWasLast = a.fl.classFor(left.blockSize()) == last
		leftPrev = left.prev
		unlink(left)
		left.setBlockSize(left.blockSize() + working.blockSize())
		left.rightNeighbor().setLeftNeighborSize(left.blockSize())
		working = left
		mergedLeft = true
	}

	switch {
	case mergedLeft && leftWasLast:
		insertAfter(leftPrev, working)
	case mergedRight && rightWasLast:
		insertAfter(rightPrev, working)
	default:
		a.fl.insertFront(a.fl.classFor(working.blockSize()), working)
	}
}
