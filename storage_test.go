// ©Lowlatency Labs 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlockq_test

import (
	"testing"

	"go.lowlatency.dev/seqlockq"
)

func TestCapacityRoundsUpToPowerOfTwo(t *testing.T) {
	cases := []struct {
		requested uint64
		want      int
	}{
		{0, 1},
		{1, 1},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{1024, 1024},
	}

	for _, c := range cases {
		rs, err := seqlockq.NewRingStorage[int](c.requested, false)
		if err != nil {
			t.Fatalf("NewRingStorage(%d): %v", c.requested, err)
		}
		if got := rs.Cap(); got != c.want {
			t.Errorf("NewRingStorage(%d).Cap() = %d, want %d", c.requested, got, c.want)
		}
		if err := rs.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}
}

func TestEmptyAtStart(t *testing.T) {
	for _, capacity := range []uint64{1, 2, 4, 8, 1024} {
		rs, err := seqlockq.NewRingStorage[int](capacity, false)
		if err != nil {
			t.Fatalf("NewRingStorage(%d): %v", capacity, err)
		}
		consumer := seqlockq.NewConsumer(rs)

		var out int
		if consumer.TryRead(&out) {
			t.Errorf("capacity %d: TryRead succeeded on a freshly constructed queue", capacity)
		}
		rs.Close()
	}
}

func TestStartupFreshnessRepeatedReads(t *testing.T) {
	rs, err := seqlockq.NewRingStorage[int](4, false)
	if err != nil {
		t.Fatalf("NewRingStorage: %v", err)
	}
	defer rs.Close()
	consumer := seqlockq.NewConsumer(rs)

	var out int
	for i := 0; i < 1000; i++ {
		if consumer.TryRead(&out) {
			t.Fatalf("TryRead succeeded at iteration %d on an unwritten queue", i)
		}
	}
}

func TestHugePagesHintFallsBackSilently(t *testing.T) {
	// Whether or not huge pages are actually available on the test
	// host, construction must succeed and behave identically.
	rs, err := seqlockq.NewRingStorage[int](64, true)
	if err != nil {
		t.Fatalf("NewRingStorage with hugePages=true: %v", err)
	}
	defer rs.Close()

	producer := seqlockq.NewProducer(rs)
	consumer := seqlockq.NewConsumer(rs)

	producer.Write(42)
	var out int
	if !consumer.TryRead(&out) || out != 42 {
		t.Fatalf("TryRead = (%d, ok) after huge-page-hinted write, want (42, true)", out)
	}
}
