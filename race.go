// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package seqlockq

// RaceEnabled is true when the race detector is active. Used by tests
// to skip concurrent producer/consumer scenarios: the race detector
// tracks explicit synchronization primitives, not the happens-before
// relationship this package establishes through acquire/release
// orderings on a plain non-atomic payload, and reports false
// positives on it.
const RaceEnabled = true
