// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlockq

import (
	"context"

	"code.hybscloud.com/spin"
)

// SpinRead is a blocking convenience built on top of TryRead for
// callers that want to spin-then-wait rather than hand-roll the poll
// loop spec.md §4.4 leaves to caller policy. It retries TryRead with
// CPU-pause-friendly spinning (spin.Wait, the same primitive the
// teacher's own CAS retry loops use) until a value is delivered or
// ctx is done.
//
// SpinRead is not on the hot path of either endpoint; it exists purely
// as sugar for simple pipelines and is safe to omit entirely in favor
// of a caller's own scheduling policy.
func SpinRead[T any](ctx context.Context, c *Consumer[T], out *T) bool {
	sw := spin.Wait{}
	for {
		if c.TryRead(out) {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		default:
		}
		sw.Once()
	}
}
