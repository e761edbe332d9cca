// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package seqlockq

import (
	"syscall"
	"unsafe"
)

// allocAlignedSlots backs the slot array with an anonymous mmap
// region, which is always page-aligned (far stronger than the
// cache-line alignment spec.md §4.1 requires). When hugePages is true
// it additionally requests MAP_HUGETLB; the caller is responsible for
// retrying without the flag on failure, per spec.md §9's "treat the
// flag as a hint" guidance.
//
// Grounded on other_examples/AlephTX-aleph-tx__seqlock.go, the one
// retrieved example that maps a seqlock ring over raw memory: it uses
// the stdlib syscall package directly rather than an ecosystem mmap
// wrapper, and so does this.
func allocAlignedSlots[T any](n uint64, hugePages bool) ([]slot[T], []byte, error) {
	size := int(unsafe.Sizeof(slot[T]{})) * int(n)

	flags := syscall.MAP_PRIVATE | syscall.MAP_ANONYMOUS
	if hugePages {
		flags |= syscall.MAP_HUGETLB
	}

	mem, err := syscall.Mmap(-1, 0, size, syscall.PROT_READ|syscall.PROT_WRITE, flags)
	if err != nil {
		return nil, nil, err
	}

	slots := unsafe.Slice((*slot[T])(unsafe.Pointer(&mem[0])), n)
	return slots, mem, nil
}

func munmapSlots(mem []byte) error {
	return syscall.Munmap(mem)
}
