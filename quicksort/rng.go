// Package quicksort - RNG utilities for pivot selection.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Parallel branches never share
//     one; deriveRNG hands every spawned branch its own stream.
package quicksort

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// freshRNG returns an unpredictable stream seeded from the runtime-seeded
// global source.
func freshRNG() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}

// deriveSeed mixes a parent seed and a stream identifier (SplitMix64
// finalizer) so sibling branches get decorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from base and a stream id.
// base.Int63() is consumed once, so repeated derivations with the same id
// still differ. Must be called from the goroutine that owns base.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), stream)))
}
