// SPDX-License-Identifier: MIT

package seqgen

import "math/rand"

// Option customizes a generator by mutating a genConfig before the first
// value is drawn. Later options override earlier ones.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seqgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the closed interval [min, max] Ints draws from.
// Panics if min > max.
func WithRange(min, max int) Option {
	if min > max {
		panic("seqgen: WithRange(min>max)")
	}
	return func(c *genConfig) {
		c.min, c.max = min, max
	}
}

// WithAlphabet sets the symbols String draws from. Panics on "".
func WithAlphabet(alphabet string) Option {
	if alphabet == "" {
		panic("seqgen: WithAlphabet(\"\")")
	}
	return func(c *genConfig) {
		c.alphabet = []rune(alphabet)
	}
}
