package malloc

import (
	"sync"

	"github.com/oberoisehej/Malloc/internal/osmem"
	"github.com/oberoisehej/Malloc/lib"
	"github.com/oberoisehej/Malloc/log"
)

// Arena is the state bundle every public entry point operates on: the
// free lists, the OS heap-extension source, and the bookkeeping needed
// by the verifier. A process normally uses the package-level singleton
// (see globalArena below), but tests construct an Arena directly to run with
// a small, isolated heap.
type Arena struct {
	mu sync.Mutex

	fl  *freelists
	src osmem.Source

	nLists      int64
	arenaSize   int64
	maxOsChunks int64

	base          uintptr
	lastFencePost *header
	osChunks      []uintptr
}

// NewArena builds an Arena from cfg, falling back to the package
// defaults (config.go) for any tunable cfg does not set. The returned
// Arena has not yet touched the OS; its first chunk is acquired lazily
// on the first Allocate.
func NewArena(cfg lib.Config) *Arena {
	st := applyConfig(cfg)
	return &Arena{
		fl:          newFreelists(st.nLists),
		src:         osmem.NewSource(),
		nLists:      st.nLists,
		arenaSize:   st.arenaSize,
		maxOsChunks: st.maxOsChunks,
		osChunks:    make([]uintptr, 0, 16),
	}
}

// withSource is identical to NewArena except the OS collaborator is
// supplied directly, letting tests drive the allocator with a
// deterministic source backed by real memory (bufSource).
func withSource(cfg lib.Config, src osmem.Source) *Arena {
	a := NewArena(cfg)
	a.src = src
	return a
}

var (
	global     *Arena
	globalOnce sync.Once
)

// globalArena returns the process-wide Arena the package-level
// Allocate/Free/Calloc/Realloc/Verify functions operate on, creating it
// on first use.
func globalArena() *Arena {
	globalOnce.Do(func() {
		global = NewArena(nil)
	})
	return global
}

// ensureInit acquires the Arena's first chunk if none has been
// requested yet. Must be called with a.mu held.
func (a *Arena) ensureInit() error {
	if a.lastFencePost != nil {
		return nil
	}
	left, inner, right := a.acquireChunk()
	if left == 0 {
		return ErrOutOfMemory
	}
	a.base = left
	a.fl.insertFront(a.fl.classFor(inner.blockSize()), inner)
	a.lastFencePost = right
	a.osChunks = append(a.osChunks, left)
	return nil
}

// acquireChunk asks a.src for a.arenaSize more bytes and formats them
// into a chunk. Returns a zero left address on failure.
func (a *Arena) acquireChunk() (left uintptr, inner, right *header) {
	addr, err := a.src.Extend(int(a.arenaSize))
	if err != nil {
		log.Warnf("malloc: chunk acquisition failed: %v\n", err)
		return 0, nil, nil
	}
	_, inner, right = installChunk(addr, a.arenaSize)
	return addr, inner, right
}
