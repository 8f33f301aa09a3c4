package malloc

import (
	"unsafe"

	"github.com/oberoisehej/Malloc/lib"
)

// blockState occupies the low bits of a header's packed size+state word.
type blockState uint8

const (
	stateUnallocated blockState = 0
	stateAllocated   blockState = 1
	stateFencepost   blockState = 2
)

const (
	// wordSize is the divisor used throughout the size-class arithmetic.
	// Pinned to 8 explicitly rather than derived from
	// unsafe.Sizeof of a pointer type, so the class boundaries never
	// depend on the build's pointer width.
	wordSize = 8

	// nListsDefault is the number of segregated size classes. The last
	// class holds every block too large for an exact bucket.
	nListsDefault = 59

	// arenaSizeDefault is the size of one OS-obtained chunk, in bytes.
	arenaSizeDefault = 2 * 1024 * 1024

	// maxOsChunksDefault is the tracked chunk count above which extend
	// logs a warning; chunks beyond it are still tracked and verified.
	maxOsChunksDefault = 4096

	// minPayload is the smallest user payload size ever rounded up to;
	// below this a freed block could not hold its own free-list links.
	minPayload = 16
)

// headerSize is the size, in bytes, of one block header: the packed
// size+state word, the left-neighbor back-pointer, and the two free-list
// links. It must be a multiple of wordSize and large enough to hold all
// four fields overlaid on a 64-bit build.
var headerSize = int64(unsafe.Sizeof(header{}))

// settings carries the per-instance tunables a state bundle is built
// with. Defaults come from the constants above; Config lets a caller
// (chiefly tests, per the host codebase's own Arena-construction idiom)
// override them without touching the package globals.
type settings struct {
	nLists      int64
	arenaSize   int64
	maxOsChunks int64
}

func defaultSettings() settings {
	return settings{
		nLists:      nListsDefault,
		arenaSize:   arenaSizeDefault,
		maxOsChunks: maxOsChunksDefault,
	}
}

// applyConfig overrides defaultSettings() with values present in cfg.
// Recognized keys: "malloc.nlists", "malloc.arenasize", "malloc.maxoschunks".
func applyConfig(cfg lib.Config) settings {
	st := defaultSettings()
	if cfg == nil {
		return st
	}
	cfg = cfg.Trim("malloc.")
	if _, ok := cfg["nlists"]; ok {
		st.nLists = cfg.Int64("nlists")
	}
	if _, ok := cfg["arenasize"]; ok {
		st.arenaSize = cfg.Int64("arenasize")
	}
	if _, ok := cfg["maxoschunks"]; ok {
		st.maxOsChunks = cfg.Int64("maxoschunks")
	}
	if st.arenaSize%wordSize != 0 || st.arenaSize < 3*headerSize+minPayload {
		panic(ErrInvalidSize)
	}
	if st.nLists < 1 {
		panic(ErrInvalidSize)
	}
	if st.maxOsChunks < 1 {
		panic(ErrInvalidSize)
	}
	return st
}
