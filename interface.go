package malloc

import "unsafe"

// Allocator is the interface implemented by *Arena. Most callers use the
// package-level functions (Allocate, Free, Calloc, Realloc, Verify),
// which operate on a process-wide Arena; this interface exists for code
// that wants an isolated instance, e.g. tests building a small arena.
type Allocator interface {
	// Allocate returns a pointer to at least size usable bytes, 8-byte
	// aligned, or nil if size is zero or the heap cannot be extended.
	Allocate(size int64) unsafe.Pointer

	// Free returns ptr, previously returned by Allocate, to the arena.
	// Free(nil) is a no-op. Freeing an already-free pointer is a
	// programmer error and panics.
	Free(ptr unsafe.Pointer)

	// Calloc is Allocate(n*size) with the returned region zeroed.
	Calloc(n, size int64) unsafe.Pointer

	// Realloc resizes the allocation at ptr to size bytes, preserving
	// min(old size, size) bytes of content.
	Realloc(ptr unsafe.Pointer, size int64) unsafe.Pointer

	// Verify checks the arena's free lists for cycles and broken links
	// and every chunk's boundary tags; it does not check for uncoalesced
	// neighbors or size-class placement.
	Verify() bool
}

var _ Allocator = (*Arena)(nil)

// Allocate acquires the lock and services one allocation.
func (a *Arena) Allocate(size int64) unsafe.Pointer {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocate(size)
}

// Free acquires the lock and services one deallocation.
func (a *Arena) Free(ptr unsafe.Pointer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.free(ptr)
}

// Verify acquires the lock and checks heap invariants.
func (a *Arena) Verify() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.verify()
}

// Allocate requests size bytes from the process-wide arena.
func Allocate(size int64) unsafe.Pointer { return globalArena().Allocate(size) }

// Free returns ptr to the process-wide arena.
func Free(ptr unsafe.Pointer) { globalArena().Free(ptr) }

// Calloc requests n*size bytes from the process-wide arena, zeroed.
func Calloc(n, size int64) unsafe.Pointer { return globalArena().Calloc(n, size) }

// Realloc resizes ptr, allocated from the process-wide arena, to size
// bytes.
func Realloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	return globalArena().Realloc(ptr, size)
}

// Verify runs the Arena verifier on the process-wide arena.
func Verify() bool { return globalArena().Verify() }
