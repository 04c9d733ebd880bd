package radixsort

import "fmt"

// Sort returns the permutation sa such that seq[sa[0]] <= seq[sa[1]] <= …,
// with equal values in input order. seq is not modified.
func Sort(seq []int, digitCount int) ([]int, error) {
	// 1. Validate the digit count and every value up front.
	if digitCount < 1 {
		return nil, fmt.Errorf("digitCount=%d: %w", digitCount, ErrInvalidArgument)
	}
	passes := min(digitCount, maxIntDigits)
	limit, bounded := pow10(digitCount)
	for i, v := range seq {
		if v < 0 || (bounded && v >= limit) {
			return nil, fmt.Errorf("index %d: value %d not in [0,10^%d): %w", i, v, digitCount, ErrOutOfRange)
		}
	}

	// 2. Identity permutation and one scratch buffer, swapped every pass.
	n := len(seq)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	tmp := make([]int, n)

	// 3. One stable counting pass per digit, least significant first.
	div := 1
	for pass := 0; pass < passes; pass++ {
		var count [radix]int
		for _, idx := range sa {
			count[seq[idx]/div%radix]++
		}
		for d := 1; d < radix; d++ {
			count[d] += count[d-1]
		}
		// Walking sa backwards while filling buckets from their top keeps
		// equal digits in their current order.
		for k := n - 1; k >= 0; k-- {
			idx := sa[k]
			d := seq[idx] / div % radix
			count[d]--
			tmp[count[d]] = idx
		}
		sa, tmp = tmp, sa
		if pass+1 < passes {
			div *= radix
		}
	}

	return sa, nil
}

// Digits returns the number of decimal digits of the largest value in seq
// (at least 1), i.e. the smallest digitCount Sort accepts for it.
func Digits(seq []int) (int, error) {
	maxV := 0
	for i, v := range seq {
		if v < 0 {
			return 0, fmt.Errorf("index %d: value %d: %w", i, v, ErrOutOfRange)
		}
		if v > maxV {
			maxV = v
		}
	}
	d := 1
	for maxV >= radix {
		maxV /= radix
		d++
	}
	return d, nil
}

// Apply gathers seq in permutation order: out[k] = seq[perm[k]].
// perm must be a permutation of 0..len(seq)-1.
func Apply[T any](seq []T, perm []int) ([]T, error) {
	if len(perm) != len(seq) {
		return nil, fmt.Errorf("len(perm)=%d len(seq)=%d: %w", len(perm), len(seq), ErrInvalidArgument)
	}
	seen := make([]bool, len(seq))
	out := make([]T, len(seq))
	for k, idx := range perm {
		if idx < 0 || idx >= len(seq) || seen[idx] {
			return nil, fmt.Errorf("perm[%d]=%d: %w", k, idx, ErrInvalidArgument)
		}
		seen[idx] = true
		out[k] = seq[idx]
	}
	return out, nil
}

// SortValues detects the digit count, sorts, and returns the values in
// ascending order as a new slice.
func SortValues(seq []int) ([]int, error) {
	d, err := Digits(seq)
	if err != nil {
		return nil, err
	}
	sa, err := Sort(seq, d)
	if err != nil {
		return nil, err
	}
	return Apply(seq, sa)
}

// pow10 returns 10^d and true, or false when 10^d does not fit in an int
// (every non-negative int then has at most d digits).
func pow10(d int) (int, bool) {
	if d >= maxIntDigits {
		return 0, false
	}
	p := 1
	for i := 0; i < d; i++ {
		p *= radix
	}
	return p, true
}
