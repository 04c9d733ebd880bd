package countsort

import "fmt"

// Sort counting-sorts seq, whose values must lie in [1, maxValue].
//
// Example:
//
//	res, err := countsort.Sort([]int{3, 1, 3, 2}, 3)
//	// res.Sorted == [1 2 3 3]
//	// res.Rank   == [4 1 3 2]   (the second 3 is ranked before the first)
func Sort(seq []int, maxValue int, opts ...Option) (*Result, error) {
	// 1. Validate arguments and every value before building anything.
	if maxValue < 1 {
		return nil, fmt.Errorf("maxValue=%d: %w", maxValue, ErrInvalidArgument)
	}
	top := 0
	for i, v := range seq {
		if v < 1 || v > maxValue {
			return nil, fmt.Errorf("index %d: value %d not in [1,%d]: %w", i, v, maxValue, ErrOutOfRange)
		}
		top = max(top, v)
	}
	if top > MaxBuckets {
		return nil, fmt.Errorf("largest value %d exceeds %d buckets: %w", top, MaxBuckets, ErrInvalidArgument)
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Histogram over 1..top, then prefix sums: count[v] = #elements <= v.
	count := make([]int, top+1)
	for _, v := range seq {
		count[v]++
	}
	for v := 2; v <= top; v++ {
		count[v] += count[v-1]
	}

	// 4. Assignment walk; the walk direction is the tie policy.
	n := len(seq)
	res := &Result{
		Sorted: make([]int, n),
		Rank:   make([]int, n),
	}
	assign := func(i int) {
		v := seq[i]
		res.Rank[i] = count[v]
		res.Sorted[count[v]-1] = v
		count[v]--
	}
	if o.Ties == Stable {
		for i := n - 1; i >= 0; i-- {
			assign(i)
		}
	} else {
		for i := 0; i < n; i++ {
			assign(i)
		}
	}

	return res, nil
}

// MaxValue returns the largest value of seq, the smallest maxValue Sort
// accepts for it.
func MaxValue(seq []int) (int, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("empty sequence: %w", ErrInvalidArgument)
	}
	m := seq[0]
	for _, v := range seq[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}
