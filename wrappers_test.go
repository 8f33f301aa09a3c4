package malloc

import (
	"math"
	"testing"
	"unsafe"
)

func TestCallocZeroesMemory(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p := a.Allocate(64) // dirty the region first
	s := unsafe.Slice((*byte)(p), 64)
	for i := range s {
		s[i] = 0xFF
	}
	a.Free(p)

	p = a.Calloc(8, 8)
	if p == nil {
		t.Fatalf("Calloc(8, 8) returned nil")
	}
	s = unsafe.Slice((*byte)(p), 64)
	for i, b := range s {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %#x", i, b)
		}
	}
}

func TestCallocOverflowRejected(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	if p := a.Calloc(math.MaxInt64, 2); p != nil {
		t.Fatalf("Calloc with an overflowing product should return nil")
	}
}

func TestCallocZeroArgsRejected(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	if p := a.Calloc(0, 8); p != nil {
		t.Fatalf("Calloc(0, 8) should return nil")
	}
	if p := a.Calloc(8, 0); p != nil {
		t.Fatalf("Calloc(8, 0) should return nil")
	}
}

func TestReallocNilActsAsAllocate(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p := a.Realloc(nil, 32)
	if p == nil {
		t.Fatalf("Realloc(nil, 32) returned nil")
	}
	if !a.Verify() {
		t.Fatalf("Verify() failed after Realloc(nil, n)")
	}
}

func TestReallocZeroActsAsFree(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p := a.Allocate(32)
	if out := a.Realloc(p, 0); out != nil {
		t.Fatalf("Realloc(p, 0) should return nil")
	}
	if !a.Verify() {
		t.Fatalf("Verify() failed after Realloc(p, 0)")
	}
}

func TestReallocGrowPreservesPrefix(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p := a.Allocate(16)
	src := unsafe.Slice((*byte)(p), 16)
	for i := range src {
		src[i] = byte(i + 1)
	}

	grown := a.Realloc(p, 256)
	if grown == nil {
		t.Fatalf("Realloc grow returned nil")
	}
	dst := unsafe.Slice((*byte)(grown), 16)
	for i := range dst {
		if dst[i] != byte(i+1) {
			t.Fatalf("byte %d = %#x, want %#x", i, dst[i], byte(i+1))
		}
	}
}

func TestReallocShrinkPreservesSurvivingPrefix(t *testing.T) {
	a, _ := newTestArena(8, 4096, 4)
	p := a.Allocate(256)
	src := unsafe.Slice((*byte)(p), 256)
	for i := range src {
		src[i] = byte(i)
	}

	shrunk := a.Realloc(p, 16)
	if shrunk == nil {
		t.Fatalf("Realloc shrink returned nil")
	}
	dst := unsafe.Slice((*byte)(shrunk), 16)
	for i := range dst {
		if dst[i] != byte(i) {
			t.Fatalf("byte %d = %#x, want %#x", i, dst[i], byte(i))
		}
	}
}
