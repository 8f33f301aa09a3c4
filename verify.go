package malloc

import (
	"fmt"

	"github.com/oberoisehej/Malloc/log"
)

// verify checks that the free lists are acyclic and internally
// consistent, and that every recorded OS chunk's boundary tags agree
// with its neighbors' actual sizes. It does not check that adjacent free
// blocks were coalesced or that each free block sits in its size class.
// a.mu must be held.
func (a *Arena) verify() bool {
	for c := int64(0); c < a.fl.n(); c++ {
		s := a.fl.sentinel(c)
		if !verifyNoCycle(s) {
			log.Errorf("%v\n", fmt.Errorf("%w: cycle in free list %d", ErrCorruptHeap, c))
			return false
		}
		if !verifyLinks(s) {
			log.Errorf("%v\n", fmt.Errorf("%w: prev/next mismatch in free list %d", ErrCorruptHeap, c))
			return false
		}
	}
	for _, left := range a.osChunks {
		if !verifyChunk(headerAt(left)) {
			log.Errorf("%v\n", fmt.Errorf("%w: boundary tag mismatch in chunk at %#x", ErrCorruptHeap, left))
			return false
		}
	}
	return true
}

// verifyNoCycle runs Floyd's tortoise-and-hare over the circular list
// anchored at sentinel s. A cycle that does not pass back through s
// indicates a corrupted link.
func verifyNoCycle(s *header) bool {
	slow, fast := s.next, s.next
	for fast != s && fast.next != s {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return false
		}
	}
	return true
}

// verifyLinks walks every node of the list anchored at s once, checking
// that prev/next agree from both directions.
func verifyLinks(s *header) bool {
	for n := s.next; n != s; n = n.next {
		if n.next.prev != n || n.prev.next != n {
			return false
		}
	}
	return true
}

// verifyChunk walks one OS chunk left to right starting at its left
// fencepost, checking that every block's right neighbor reports the
// correct left-size back-pointer, and terminates cleanly at the right
// fencepost.
func verifyChunk(left *header) bool {
	cur := left
	first := true
	for {
		if cur.blockState() == stateFencepost && !first {
			return true
		}
		first = false

		right := cur.rightNeighbor()
		if right.leftNeighborSize() != cur.blockSize() {
			return false
		}
		cur = right
	}
}
