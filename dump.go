package malloc

import (
	"fmt"

	"github.com/oberoisehej/Malloc/lib"
)

// blockString renders one block relative to a.base, for diagnostics. A
// chunk the OS happened to place below base renders a negative-looking
// offset as its magnitude instead, since the sign carries no meaning here.
func (a *Arena) blockString(h *header) string {
	off := lib.AbsInt64(int64(addrOfHeader(h)) - int64(a.base))
	var st string
	switch h.blockState() {
	case stateUnallocated:
		st = "free"
	case stateAllocated:
		st = "alloc"
	case stateFencepost:
		st = "fence"
	default:
		st = "?"
	}
	return fmt.Sprintf("off=%d size=%d state=%s left=%d", off, h.blockSize(), st, h.leftNeighborSize())
}

// dumpList renders every block currently on free list class, head to
// tail, as one string per line.
func (a *Arena) dumpList(class int64) []string {
	s := a.fl.sentinel(class)
	var lines []string
	for n := s.next; n != s; n = n.next {
		lines = append(lines, a.blockString(n))
	}
	return lines
}

// dumpChunk renders every block of the chunk starting at left, left
// fencepost to right fencepost inclusive.
func (a *Arena) dumpChunk(left uintptr) []string {
	cur := headerAt(left)
	lines := []string{a.blockString(cur)}
	first := true
	for {
		if cur.blockState() == stateFencepost && !first {
			return lines
		}
		first = false
		cur = cur.rightNeighbor()
		lines = append(lines, a.blockString(cur))
	}
}

// Dump renders the full heap: every OS chunk in order, followed by the
// contents of every non-empty free list. Intended for interactive
// debugging (see cmd/segdump), not for parsing.
func (a *Arena) Dump() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := "chunks:\n"
	for _, left := range a.osChunks {
		for _, line := range a.dumpChunk(left) {
			out += "  " + line + "\n"
		}
	}
	out += "free lists:\n"
	for c := int64(0); c < a.fl.n(); c++ {
		lines := a.dumpList(c)
		if len(lines) == 0 {
			continue
		}
		out += fmt.Sprintf(" class %d:\n", c)
		for _, line := range lines {
			out += "  " + line + "\n"
		}
	}
	return out
}
