// SPDX-License-Identifier: MIT

package seqgen

// Ints returns n integers drawn uniformly from the configured range
// (default [-100, 100]).
func Ints(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, seqgenErrorf(MethodInts, "n=%d", ErrBadSize, n)
	}
	cfg := newGenConfig(opts...)

	out := make([]int, n)
	for i := range out {
		out[i] = cfg.intn(cfg.min, cfg.max)
	}

	return out, nil
}

// Bounded returns n integers drawn uniformly from [lo, hi]. It is the
// fixture shape counting sort ([1,m]) and radix sort ([0,10^d)) expect.
// Any WithRange option is ignored in favor of the explicit bounds.
func Bounded(n, lo, hi int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, seqgenErrorf(MethodBounded, "n=%d", ErrBadSize, n)
	}
	if lo > hi {
		return nil, seqgenErrorf(MethodBounded, "lo=%d > hi=%d", ErrBadSize, lo, hi)
	}
	cfg := newGenConfig(opts...)

	out := make([]int, n)
	for i := range out {
		out[i] = cfg.intn(lo, hi)
	}

	return out, nil
}

// String returns n symbols drawn uniformly from the configured alphabet
// (default "abcde"). Small alphabets give many overlapping matches, which is
// what a string-matcher test wants.
func String(n int, opts ...Option) (string, error) {
	if n < 0 {
		return "", seqgenErrorf(MethodString, "n=%d", ErrBadSize, n)
	}
	cfg := newGenConfig(opts...)

	out := make([]rune, n)
	for i := range out {
		out[i] = cfg.alphabet[cfg.rng.Intn(len(cfg.alphabet))]
	}

	return string(out), nil
}
