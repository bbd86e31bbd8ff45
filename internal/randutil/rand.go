// Package randutil centralizes how random number generators, and the seeds
// they hand down to child tasks, derive from a single int64.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a generator seeded deterministically from seed. rand/v2's PCG
// wants two 64-bit words, so both are derived from the one seed and every
// call site sees the same sequence for the same input.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seeds returns n child seeds derived from parent. The children depend only
// on the parent value, so a parallel batch that assigns them up front stays
// reproducible no matter how its tasks get scheduled.
func Seeds(parent int64, n int) []int64 {
	rng := New(parent)
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int64()
	}
	return out
}

// mix is the SplitMix64 finalizer; it spreads nearby seeds across the whole
// word so sequential seeds do not produce correlated streams.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
