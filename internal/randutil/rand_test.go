package randutil

import (
	"testing"
)

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		av, bv := a.Int64(), b.Int64()
		if av != bv {
			t.Fatalf("draw %d diverged: %d != %d", i, av, bv)
		}
	}
}

func TestNewNearbySeedsDiffer(t *testing.T) {
	// Sequential seeds are the common case (worker 0, 1, 2, ...); their
	// streams must not line up.
	a := New(1).Int64()
	b := New(2).Int64()

	if a == b {
		t.Errorf("seeds 1 and 2 produced the same first draw: %d", a)
	}
}

func TestSeedsStable(t *testing.T) {
	first := Seeds(7, 5)
	second := Seeds(7, 5)

	if len(first) != 5 {
		t.Fatalf("expected 5 seeds, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("seed %d differs between calls: %d != %d", i, first[i], second[i])
		}
	}

	seen := make(map[int64]bool)
	for _, s := range first {
		if seen[s] {
			t.Errorf("duplicate child seed: %d", s)
		}
		seen[s] = true
	}
}

func TestSeedsEmpty(t *testing.T) {
	if got := Seeds(7, 0); len(got) != 0 {
		t.Errorf("expected no seeds, got %v", got)
	}
}
