// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlockq

// Consumer is the single reader endpoint for a RingStorage. It holds
// a monotonically increasing read index and a lap watermark, and is
// not safe to share across goroutines (see spec.md §5).
type Consumer[T any] struct {
	storage     *RingStorage[T]
	readPos     uint64
	readVersion uint8
}

// NewConsumer creates a reader endpoint bound to rs. rs must outlive
// the returned Consumer.
func NewConsumer[T any](rs *RingStorage[T]) *Consumer[T] {
	return &Consumer[T]{storage: rs}
}

// TryRead attempts to deliver the next unread slot into out. It
// returns true when a fresh, coherent value was copied into out, and
// false when there is nothing new to deliver yet, a write is
// currently in flight on the target slot, or the candidate value was
// already delivered in a previous lap (stale after version wrap). On
// a false return, out may have been partially overwritten with
// torn/garbage bytes and must be discarded; the read index is not
// advanced.
func (c *Consumer[T]) TryRead(out *T) bool {
	idx := c.readPos & c.storage.mask
	s := &c.storage.slots[idx]

	v1 := versionOf(s.version.LoadAcquire())
	*out = s.payload
	v2 := versionOf(s.version.LoadAcquire())

	if v1 != v2 || v1&1 == 1 {
		// Either a write straddled the payload copy, or one is still
		// in progress. The bytes in out may be torn; discard them.
		return false
	}

	diff := v1 - c.readVersion
	if diff >= staleThreshold {
		// Rejects the initial 254 sentinel on a never-written slot,
		// and rejects slots still holding the previous lap's version
		// after the producer's counter has wrapped past this consumer.
		return false
	}

	// The last-slot case is checked first so that a one-slot ring
	// (where slot 0 is also the last slot) advances the watermark past
	// the value just delivered instead of redelivering it.
	switch idx {
	case c.storage.mask: // last slot of the ring (capacity-1)
		c.readVersion = v2 + 2
	case 0:
		c.readVersion = v2
	}

	c.readPos++
	return true
}
