// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seqlockq provides a bounded single-producer/single-consumer
// seqlock queue for fixed-size, trivially copyable payloads.
//
// Unlike an SPSC FIFO, this queue is deliberately overwriting: the
// producer never blocks and never fails, and the consumer sees the
// newest coherent value reachable at each slot or skips it. It is
// meant for low-latency pipelines — market-data fan-out, telemetry
// relays, audio buffers — where a stale or skipped read is acceptable
// but a blocked producer is not.
//
// # Quick Start
//
//	storage, err := seqlockq.NewRingStorage[Tick](1024, false)
//	if err != nil {
//	    // allocation failed
//	}
//	defer storage.Close()
//
//	producer := seqlockq.NewProducer(storage)
//	consumer := seqlockq.NewConsumer(storage)
//
//	producer.Write(Tick{Price: 101.25, Size: 500})
//
//	var out Tick
//	if consumer.TryRead(&out) {
//	    fmt.Println(out)
//	}
//
// # Basic Usage
//
// Producer and Consumer are each single-threaded within themselves:
// exactly one goroutine may call a Producer's methods, and exactly
// one (possibly different) goroutine may call a Consumer's methods.
// Both read from and write to the same RingStorage, which must
// outlive both endpoints.
//
//	// Producer goroutine (never blocks, never fails)
//	go func() {
//	    for tick := range feed {
//	        producer.Write(tick)
//	    }
//	}()
//
//	// Consumer goroutine
//	go func() {
//	    var t Tick
//	    for {
//	        if consumer.TryRead(&t) {
//	            process(t)
//	            continue
//	        }
//	        runtime.Gosched() // or spin, or do other work
//	    }
//	}()
//
// TryRead returning false means one of: nothing new has been written
// yet, a write is currently in flight on the next slot, or the
// candidate value was already delivered on a previous lap around the
// ring (stale after the per-slot version counter wrapped). All three
// cases are indistinguishable to the caller by design — see
// SPEC_FULL.md for the wrap-detection arithmetic.
//
// # In-place Writes
//
// WriteWith avoids staging a copy of large payloads on the stack:
//
//	producer.WriteWith(func(t *Tick) {
//	    t.Price = nextPrice()
//	    t.Size = nextSize()
//	})
//
// PrepareWrite/CommitWrite are the two primitives both Write and
// WriteWith are built on, exposed directly for callers that need to
// interleave other work between reserving a slot and publishing it.
//
// # Huge Pages
//
//	storage, err := seqlockq.NewRingStorage[Tick](1<<20, true)
//
// Requests huge-page-backed storage on platforms that support it
// (currently Linux, via mmap with MAP_HUGETLB). On any other platform,
// or if huge pages are unavailable on this one, the hint is silently
// ignored and an ordinary allocation is used instead — this queue
// never fails construction just because huge pages could not be
// granted.
//
// # Spinning
//
// SpinRead wraps TryRead in a cancellable spin-then-wait loop for
// callers who would otherwise hand-roll the same thing:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	var t Tick
//	if seqlockq.SpinRead(ctx, consumer, &t) {
//	    process(t)
//	}
//
// # Capacity
//
// Capacity rounds up to the next power of two:
//
//	seqlockq.NewRingStorage[int](3, false)    // effective capacity 4
//	seqlockq.NewRingStorage[int](1000, false) // effective capacity 1024
//
// Requests above 2^63 are clamped to 2^63 rather than rejected.
//
// # Thread Safety
//
// Exactly one producer goroutine and one consumer goroutine. This is
// a hard requirement, not a tunable: unlike code.hybscloud.com/lfq's
// MPMC/MPSC/SPMC family, this queue's producer-side wait-freedom and
// the consumer's wrap-detection watermark both depend on there being
// a single write index and a single read index with no synchronization
// between concurrent writers or concurrent readers. A second producer
// or consumer goroutine is undefined behavior, not a slow path.
//
// # Race Detection
//
// As with any seqlock, Go's race detector cannot observe the
// happens-before relationship this package establishes between the
// version counter's acquire/release pairs and the plain, non-atomic
// payload access they guard — it will report a false positive on
// concurrent producer/consumer access. Tests that exercise concurrent
// access are skipped under -race; see RaceEnabled.
//
// # Dependencies
//
// This package uses code.hybscloud.com/atomix for the per-slot
// version counter's explicit acquire/release/acq-rel operations, and
// code.hybscloud.com/spin for the CPU-pause-friendly spin in SpinRead.
package seqlockq
