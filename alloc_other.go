// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package seqlockq

import "errors"

// errHugePagesUnsupported is never returned to callers of
// NewRingStorage: it only tells the non-hugePages fallback path in
// storage.go to take over, per spec.md §9 ("treat the flag as a hint
// and fall back silently").
var errHugePagesUnsupported = errors.New("seqlockq: huge pages not supported on this platform")

// allocAlignedSlots falls back to an ordinary heap allocation on
// platforms without the mmap-based huge-page path. The slot type
// already carries cache-line padding (see types.go); Go's allocator
// does not guarantee the slice header itself starts on a cache-line
// boundary, which is a documented relaxation of spec.md §4.1 on these
// platforms — see DESIGN.md.
func allocAlignedSlots[T any](n uint64, hugePages bool) ([]slot[T], []byte, error) {
	if hugePages {
		return nil, nil, errHugePagesUnsupported
	}
	return make([]slot[T], n), nil, nil
}

func munmapSlots(mem []byte) error {
	return nil
}
