// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlockq

import "fmt"

// ErrAllocationFailed is returned by NewRingStorage when the slot
// array cannot be allocated. It is the only error NewRingStorage
// returns; the hot path produces no errors at all — TryRead reports
// every non-delivery case with a plain false return instead of an
// error, per spec.md §7.
//
// Matches the plain fmt.Errorf sentinel style used throughout the
// retrieved pack (e.g. aradilov-ringbuffer's ErrQueueIsFull) rather
// than an error-wrapping library: none appears anywhere in the pack.
var ErrAllocationFailed = fmt.Errorf("seqlockq: aligned allocation failed")
