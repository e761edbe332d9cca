// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlockq

// Producer is the single writer endpoint for a RingStorage. It holds
// a monotonically increasing write index and is not safe to share
// across goroutines: exactly one goroutine may call its methods, ever
// (see spec.md §5).
type Producer[T any] struct {
	storage  *RingStorage[T]
	writePos uint64
}

// NewProducer creates a writer endpoint bound to rs. rs must outlive
// the returned Producer.
func NewProducer[T any](rs *RingStorage[T]) *Producer[T] {
	return &Producer[T]{storage: rs}
}

// PrepareWrite begins the write protocol at the current write index
// and returns a pointer to the slot's payload for the caller to fill
// in place. CommitWrite must be called exactly once after each
// PrepareWrite before the next PrepareWrite.
//
// The version bump to odd happens with acquire-release ordering
// (AddAcqRel is the strongest primitive atomix exposes for fetch-add;
// spec.md only requires release here). There is no separate compiler
// barrier call between this and the payload write that follows it —
// see SPEC_FULL.md §5 for why none is needed in Go.
func (p *Producer[T]) PrepareWrite() *T {
	s := &p.storage.slots[p.writePos&p.storage.mask]
	s.version.AddAcqRel(1)
	return &s.payload
}

// CommitWrite ends the write protocol, bumping the version back to
// even and advancing the write index. The payload must already have
// been written via the pointer PrepareWrite returned.
func (p *Producer[T]) CommitWrite() {
	s := &p.storage.slots[p.writePos&p.storage.mask]
	s.version.AddAcqRel(1)
	p.writePos++
}

// Write copies value into the next slot. Convenience wrapper around
// PrepareWrite/CommitWrite for payloads cheap enough to stage on the
// stack first.
func (p *Producer[T]) Write(value T) {
	*p.PrepareWrite() = value
	p.CommitWrite()
}

// WriteWith populates the next slot in place via fn, avoiding the
// staging copy Write performs. fn must not retain the pointer it is
// given beyond the call.
func (p *Producer[T]) WriteWith(fn func(*T)) {
	fn(p.PrepareWrite())
	p.CommitWrite()
}
