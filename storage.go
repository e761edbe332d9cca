// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlockq

import (
	"fmt"

	"code.hybscloud.com/atomix"
)

// slot is one ring element: a version counter guarding a non-atomic
// payload, padded so neighboring slots do not share a cache line.
//
// version is physically an atomix.Uint64 rather than an 8-bit word:
// atomix has no Uint8 primitive. Only the low byte is ever read or
// compared (see versionOf), so the logical arithmetic still wraps
// modulo 256 exactly as spec.md requires.
type slot[T any] struct {
	version atomix.Uint64
	payload T
	_       cacheLine
}

func versionOf(raw uint64) uint8 { return uint8(raw) }

// RingStorage owns the capacity-rounded slot array shared between one
// Producer and one Consumer. It is exclusively owned: a Producer and
// Consumer built against it hold non-owning references and must not
// outlive it.
type RingStorage[T any] struct {
	slots    []slot[T]
	mask     uint64
	capacity uint64
	mapped   []byte // non-nil when backed by an mmap'd region (always on Linux)
}

// NewRingStorage allocates a ring able to hold at least capacity
// slots; the effective capacity is the smallest power of two >=
// capacity (requests above 2^63 are clamped to 2^63). When hugePages
// is true the implementation attempts to back the slot array with
// huge-page-backed anonymous memory on platforms that support it; on
// platforms or configurations where that is not possible it falls
// back silently to an ordinary allocation (an anonymous mmap without
// huge pages on Linux, a heap slice elsewhere), per spec.md §9.
func NewRingStorage[T any](capacity uint64, hugePages bool) (*RingStorage[T], error) {
	n := roundCapacity(capacity)

	rs := &RingStorage[T]{
		mask:     n - 1,
		capacity: n,
	}

	if hugePages {
		slots, mapped, err := allocAlignedSlots[T](n, true)
		if err == nil {
			rs.slots = slots
			rs.mapped = mapped
		}
	}

	if rs.slots == nil {
		slots, mapped, err := allocAlignedSlots[T](n, false)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
		}
		rs.slots = slots
		rs.mapped = mapped
	}

	for i := range rs.slots {
		rs.slots[i].version.StoreRelaxed(uint64(initialVersion))
	}

	return rs, nil
}

// Cap returns the effective (power-of-two) capacity.
func (rs *RingStorage[T]) Cap() int {
	return int(rs.capacity)
}

// Close releases the backing allocation. Only needed when the ring
// was created with a huge-page-backed or otherwise mmap'd region; it
// is always safe to call.
func (rs *RingStorage[T]) Close() error {
	if rs.mapped == nil {
		return nil
	}
	mapped := rs.mapped
	rs.mapped = nil
	rs.slots = nil
	return munmapSlots(mapped)
}
