// Package malloc is a general purpose dynamic memory allocator.
//
// It manages a heap built from chunks obtained from the operating system,
// using a segregated free-list with boundary-tag coalescing. Allocation
// requests are bucketed by size class; a request that outgrows every
// bucket falls back to a first-fit scan of the largest class. Freed
// blocks are coalesced with their neighbors, including across chunk
// boundaries when two chunks happen to land contiguously.
//
//   - Memory returned by Allocate is always 8-byte aligned.
//   - Once a chunk is obtained from the OS it is never returned; Free only
//     returns a block to the internal free lists.
//   - All public entry points are safe for concurrent use from multiple
//     goroutines, serialized behind a single mutex.
//   - Double-freeing a pointer is a programmer error: it is logged and
//     panics, matching the abort semantics of the allocator this package
//     replaces without preventing a test from recovering the panic to
//     assert on it.
package malloc

// TODO: no memory is ever returned to the OS; chunks live for the process
// lifetime. A compacting release path would need to track per-chunk
// occupancy, which the current free-list layout does not.
