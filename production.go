//go:build !debug

package malloc

// initBlock is a no-op in production builds: chunks come from anonymous
// mmap, which the OS guarantees arrives zeroed, and re-zeroing payload
// on every carve would cost real throughput for no correctness benefit.
// Callers that need zeroed memory on every call use Calloc, which zeroes
// explicitly regardless of build tag.
func initBlock(h *header) {}
