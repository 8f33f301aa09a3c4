package malloc

// freelists holds the segregated size-class sentinels. Each entry is a
// circular doubly-linked list threaded through header.prev/header.next;
// an empty list has its sentinel pointing to itself.
//
// List i, for i < len(sentinels)-1, holds only free blocks whose user
// payload is exactly (i+1)*wordSize bytes. The last list holds every
// free block too large for an exact class, in no particular size order.
type freelists struct {
	sentinels []header
}

func newFreelists(n int64) *freelists {
	fl := &freelists{sentinels: make([]header, n)}
	for i := range fl.sentinels {
		s := &fl.sentinels[i]
		s.next, s.prev = s, s
	}
	return fl
}

func (fl *freelists) n() int64 { return int64(len(fl.sentinels)) }

func (fl *freelists) sentinel(class int64) *header {
	return &fl.sentinels[class]
}

func (fl *freelists) isEmpty(class int64) bool {
	s := fl.sentinel(class)
	return s.next == s
}

// classFor returns the size class a free block of totalSize (header
// included) belongs in.
func (fl *freelists) classFor(totalSize int64) int64 {
	last := fl.n() - 1
	idx := (totalSize-headerSize)/wordSize - 1
	if idx < 0 {
		idx = 0
	}
	if idx > last {
		idx = last
	}
	return idx
}

// insertFront pushes blk onto the head of class, used whenever a block's
// former list position is not being reused.
func (fl *freelists) insertFront(class int64, blk *header) {
	s := fl.sentinel(class)
	blk.next = s.next
	blk.prev = s
	s.next.prev = blk
	s.next = blk
}

// insertAfter splices blk in immediately after node, used to restore a
// large-class block to the exact position a coalesced neighbor occupied.
func insertAfter(node, blk *header) {
	blk.next = node.next
	blk.prev = node
	node.next.prev = blk
	node.next = blk
}

// unlink removes blk from whatever list it currently sits on. blk's own
// links are left dangling (the caller is expected to either discard blk
// or immediately re-link it elsewhere).
func unlink(blk *header) {
	blk.prev.next = blk.next
	blk.next.prev = blk.prev
}

// isSentinel reports whether h is one of fl's class sentinels, i.e. not
// a real block.
func (fl *freelists) isSentinel(h *header) bool {
	for i := range fl.sentinels {
		if &fl.sentinels[i] == h {
			return true
		}
	}
	return false
}
