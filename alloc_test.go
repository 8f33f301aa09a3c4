package malloc

import (
	"testing"
	"unsafe"
)

func alignedTo8(p unsafe.Pointer) bool {
	return uintptr(p)%8 == 0
}

func TestAllocateZeroIsNil(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	if p := a.Allocate(0); p != nil {
		t.Fatalf("Allocate(0) = %v, want nil", p)
	}
}

func TestAllocateMinimumSize(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p := a.Allocate(1)
	if p == nil {
		t.Fatalf("Allocate(1) returned nil")
	}
	if !alignedTo8(p) {
		t.Fatalf("Allocate(1) = %p is not 8-byte aligned", p)
	}
	h := headerFromPayload(p)
	if got, want := h.blockSize(), headerSize+minPayload; got != want {
		t.Fatalf("backing block size = %d, want %d", got, want)
	}
}

func TestAllocateExactClassReuse(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p1 := a.Allocate(16)
	a.Free(p1)
	p2 := a.Allocate(16)
	if p1 != p2 {
		t.Fatalf("expected the freed 16-byte block to be reused, got p1=%p p2=%p", p1, p2)
	}
}

func TestAllocateSplitThenCoalesce(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p1 := a.Allocate(16)
	p2 := a.Allocate(32)

	a.Free(p1)
	a.Free(p2)

	if !a.Verify() {
		t.Fatalf("Verify() failed after draining both allocations")
	}

	last := a.fl.n() - 1
	s := a.fl.sentinel(last)
	if s.next == s {
		t.Fatalf("expected one surviving free block in the last list")
	}
	blk := s.next
	if blk.next != s {
		t.Fatalf("expected exactly one surviving free block, found more")
	}
	if blk.leftNeighbor().blockState() != stateFencepost {
		t.Fatalf("the drained block should reach back to the chunk's left fencepost")
	}
	if want := a.arenaSize - 2*headerSize; blk.blockSize() != want {
		t.Fatalf("drained block size = %d, want %d (the whole chunk collapsed)", blk.blockSize(), want)
	}
}

func TestAllocateWritesDoNotOverlap(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p1 := a.Allocate(24)
	p2 := a.Allocate(24)

	s1 := unsafe.Slice((*byte)(p1), 24)
	s2 := unsafe.Slice((*byte)(p2), 24)
	for i := range s1 {
		s1[i] = 0xAA
	}
	for i := range s2 {
		s2[i] = 0xBB
	}
	for i := range s1 {
		if s1[i] != 0xAA {
			t.Fatalf("write to p2 clobbered p1 at byte %d", i)
		}
	}
}

func TestAllocateChunkFusion(t *testing.T) {
	const chunkSize = 512
	a, _ := newTestArena(4, chunkSize, 8)

	// Force the first chunk to exhaust, pulling in a second one that
	// bufSource places contiguously by default.
	payload := chunkSize - 2*int(headerSize) - int(headerSize) - 8
	p1 := a.Allocate(int64(payload))
	if p1 == nil {
		t.Fatalf("first allocation unexpectedly failed")
	}
	p2 := a.Allocate(int64(payload))
	if p2 == nil {
		t.Fatalf("second allocation (forcing a new chunk) unexpectedly failed")
	}

	if len(a.osChunks) != 1 {
		t.Fatalf("osChunks = %d, want 1 (second chunk should have fused into the first)", len(a.osChunks))
	}

	a.Free(p1)
	a.Free(p2)
	if !a.Verify() {
		t.Fatalf("Verify() failed after fusion and drain")
	}
}

func TestAllocateNonContiguousChunkStaysSeparate(t *testing.T) {
	const chunkSize = 512
	a, src := newTestArena(4, chunkSize, 8)

	payload := chunkSize - 2*int(headerSize) - int(headerSize) - 8
	p1 := a.Allocate(int64(payload))
	if p1 == nil {
		t.Fatalf("first allocation unexpectedly failed")
	}

	src.forceGapOnNextExtend(64)
	p2 := a.Allocate(int64(payload))
	if p2 == nil {
		t.Fatalf("second allocation unexpectedly failed")
	}

	if len(a.osChunks) != 2 {
		t.Fatalf("osChunks = %d, want 2 (a gap should prevent fusion)", len(a.osChunks))
	}
	if !a.Verify() {
		t.Fatalf("Verify() failed with two independent chunks")
	}

	a.Free(p1)
	a.Free(p2)
	if !a.Verify() {
		t.Fatalf("Verify() failed after draining two independent chunks")
	}
}

func TestAllocateLargeListRetentionUnderCoalesce(t *testing.T) {
	const chunkSize = 8192
	a, _ := newTestArena(4, chunkSize, 2)

	big := int64(chunkSize) / 3
	p1 := a.Allocate(big)
	p2 := a.Allocate(big)
	if p1 == nil || p2 == nil {
		t.Fatalf("large allocations unexpectedly failed")
	}

	a.Free(p2)
	a.Free(p1)

	if !a.Verify() {
		t.Fatalf("Verify() failed after coalescing two large blocks")
	}
}
