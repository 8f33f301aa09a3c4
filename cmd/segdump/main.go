// Command segdump drives a scratch allocator through a small, scripted
// sequence of allocations and frees, then prints the resulting heap
// layout and verifier result. Useful for eyeballing how a given
// sequence of sizes splits and coalesces blocks.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/oberoisehej/Malloc"
)

func main() {
	sizes := flag.String("sizes", "16,32,64", "comma separated allocation sizes to request, in order")
	free := flag.String("free", "", "comma separated indices (0-based, into -sizes) to free before dumping")
	flag.Parse()

	reqs := parseInts(*sizes)
	freeIdx := parseInts(*free)
	for _, idx := range freeIdx {
		if idx < 0 || idx >= len(reqs) {
			fmt.Fprintf(os.Stderr, "segdump: free index %d out of range\n", idx)
			os.Exit(1)
		}
	}

	a := malloc.NewArena(nil)
	ptrs := make([]unsafe.Pointer, len(reqs))
	for i, sz := range reqs {
		ptrs[i] = a.Allocate(int64(sz))
		if ptrs[i] == nil {
			fmt.Fprintf(os.Stderr, "segdump: allocation %d (size %d) failed\n", i, sz)
			os.Exit(1)
		}
	}
	for _, idx := range freeIdx {
		a.Free(ptrs[idx])
	}

	fmt.Println(a.Dump())
	fmt.Printf("verify: %v\n", a.Verify())
}

func parseInts(s string) []int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			fmt.Fprintf(os.Stderr, "segdump: invalid integer %q\n", p)
			os.Exit(1)
		}
		out = append(out, n)
	}
	return out
}
