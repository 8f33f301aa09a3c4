// Package osmem is the raw heap-extension primitive the allocator builds
// on: "map N more bytes, possibly but not necessarily contiguous with the
// last mapping".
//
// It never guarantees contiguity — a concurrent foreign mapping can land
// in between two calls — it only reports what address it actually used,
// so the caller can detect whether two extensions happen to abut.
package osmem

import "errors"

// ErrExtendFailed wraps any operating-system failure to extend the
// mapping, distinguished from an out-of-memory condition only by the
// wrapped error's text; callers treat both as exhaustion.
var ErrExtendFailed = errors.New("osmem.extendfailed")

// Source extends a process-private memory mapping on demand.
type Source interface {
	// Extend maps size additional bytes and returns their start address.
	// Where the new mapping lands relative to the previous one is up to
	// the implementation (the platform sources pass no address hint);
	// the caller compares the returned address with the end of the
	// previous mapping to tell whether the two abut.
	Extend(size int) (addr uintptr, err error)

	// LastEnd returns the address one past the end of the most recent
	// successful Extend call, or zero if Extend has never succeeded.
	LastEnd() uintptr
}

// FakeSource is a deterministic Source for tests that need to control
// whether successive Extend calls land contiguously. A zero Gap keeps
// extensions abutting; a non-zero Gap forces the allocator to treat the
// next chunk as independent, exercising the non-fusing path.
type FakeSource struct {
	Next    uintptr
	Gap     uintptr
	lastEnd uintptr
}

func (f *FakeSource) Extend(size int) (uintptr, error) {
	addr := f.Next + f.Gap
	f.Next = addr + uintptr(size)
	f.lastEnd = addr + uintptr(size)
	return addr, nil
}

func (f *FakeSource) LastEnd() uintptr { return f.lastEnd }
