//go:build !windows

package osmem

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// unixSource extends the heap with anonymous private mmap regions. It
// does not pass an address hint to mmap (the golang.org/x/sys/unix
// wrapper does not expose one) and instead compares the address the
// kernel actually chose against the end of the previous mapping —
// mirroring sbrk's best-effort, never-guaranteed contiguity.
type unixSource struct {
	mu      sync.Mutex
	lastEnd uintptr
	regions [][]byte
}

// NewSource returns the platform Source for this build.
func NewSource() Source {
	return &unixSource{}
}

func (s *unixSource) Extend(size int) (uintptr, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExtendFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = append(s.regions, mem)
	addr := uintptr(unsafe.Pointer(&mem[0]))
	s.lastEnd = addr + uintptr(size)
	return addr, nil
}

func (s *unixSource) LastEnd() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastEnd
}
