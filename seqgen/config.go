// SPDX-License-Identifier: MIT

package seqgen

import "math/rand"

// genConfig aggregates every generator knob. Passed by value.
type genConfig struct {
	rng      *rand.Rand
	min, max int
	alphabet []rune
}

// Deterministic defaults.
const (
	defaultSeed     int64 = 1
	defaultMin            = -100
	defaultMax            = 100
	defaultAlphabet       = "abcde"
)

// newGenConfig starts from the defaults and applies opts in order.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		min:      defaultMin,
		max:      defaultMax,
		alphabet: []rune(defaultAlphabet),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// No RNG supplied: fall back to the fixed seed, never to wall-clock time.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// intn draws uniformly from [lo, hi]; lo <= hi is guaranteed by callers.
func (c genConfig) intn(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}
