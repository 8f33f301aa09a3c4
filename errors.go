package malloc

import "errors"

// ErrOutOfMemory is returned internally when the operating system refuses
// to extend the heap. It never escapes the package: callers observe a nil
// return from Allocate/Calloc/Realloc instead.
var ErrOutOfMemory = errors.New("malloc.outofmemory")

// ErrInvalidSize is the panic value NewArena raises when a tunable fails
// a sanity check: an arena size that is not a multiple of the word size
// or too small to hold two fenceposts plus one minimum-sized block, or a
// list count or chunk ceiling below one.
var ErrInvalidSize = errors.New("malloc.invalidsize")

// ErrCorruptHeap is the verifier's catch-all for a structural invariant
// violation: a cycle in a free list, a prev/next mismatch, or disagreeing
// boundary tags.
var ErrCorruptHeap = errors.New("malloc.corruptheap")

// ErrDoubleFree is the panic value raised when Free is called on a
// pointer whose header is already UNALLOCATED. This is a programmer
// error in the caller, not a recoverable condition.
var ErrDoubleFree = errors.New("malloc.doublefree")
