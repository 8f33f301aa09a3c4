//go:build windows

package osmem

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

// windowsSource extends the heap with VirtualAlloc reservations, the
// Windows counterpart of the unix build's anonymous mmap. Like the unix
// source, it never requests a specific address; contiguity with the
// previous reservation is only ever detected, not engineered.
type windowsSource struct {
	mu      sync.Mutex
	lastEnd uintptr
}

// NewSource returns the platform Source for this build.
func NewSource() Source {
	return &windowsSource{}
}

func (s *windowsSource) Extend(size int) (uintptr, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExtendFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastEnd = addr + uintptr(size)
	return addr, nil
}

func (s *windowsSource) LastEnd() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastEnd
}
