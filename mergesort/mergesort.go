package mergesort

import (
	"cmp"
	"fmt"
	"math/bits"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// merger holds the per-call state: the slice being sorted, the auxiliary
// buffer and the comparator. aux[k] shadows seq[base+k].
type merger[T any] struct {
	seq     []T
	aux     []T
	base    int
	compare func(a, b T) int
}

// Sort sorts seq[lo..hi] (inclusive) into non-decreasing order, stably.
//
// Example:
//
//	xs := []int{5, 2, 9, 1}
//	err := mergesort.Sort(xs, 0, len(xs)-1)
//	// xs == [1 2 5 9]
func Sort[T cmp.Ordered](seq []T, lo, hi int, opts ...Option) error {
	return SortFunc(seq, lo, hi, cmp.Compare[T], opts...)
}

// SortAll stably sorts the whole slice.
func SortAll[T cmp.Ordered](seq []T, opts ...Option) error {
	return Sort(seq, 0, len(seq)-1, opts...)
}

// SortFunc sorts seq[lo..hi] (inclusive) by compare, stably: elements that
// compare equal keep their relative input order. compare follows the
// cmp.Compare convention (negative, zero, positive).
func SortFunc[T any](seq []T, lo, hi int, compare func(a, b T) int, opts ...Option) error {
	// 1. Validate inputs.
	if lo < 0 || hi >= len(seq) || lo > hi+1 {
		return fmt.Errorf("lo=%d hi=%d len=%d: %w", lo, hi, len(seq), ErrInvalidBounds)
	}
	if compare == nil {
		return ErrNilComparator
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.BottomUp && o.ParallelThreshold > 0 {
		return ErrOptionConflict
	}
	if hi-lo < 1 {
		return nil
	}

	// 3. One auxiliary buffer for the whole call.
	m := &merger[T]{
		seq:     seq,
		aux:     make([]T, hi-lo+1),
		base:    lo,
		compare: compare,
	}

	switch {
	case o.BottomUp:
		m.bottomUp(lo, hi)
	case o.ParallelThreshold > 0:
		depth := bits.Len(uint(runtime.GOMAXPROCS(0))) + 1
		return m.fork(lo, hi, o.ParallelThreshold, depth)
	default:
		m.topDown(lo, hi)
	}

	return nil
}

// merge combines the sorted runs seq[lo..mid] and seq[mid+1..hi] through
// the aux window of the same range, then copies the result back.
func (m *merger[T]) merge(lo, mid, hi int) {
	// Runs already in order: nothing to do.
	if m.compare(m.seq[mid+1], m.seq[mid]) >= 0 {
		return
	}

	buf := m.aux[lo-m.base : hi-m.base+1]
	i, j, k := lo, mid+1, 0
	for i <= mid && j <= hi {
		// Take the right head only when strictly smaller: ties keep the
		// left element first.
		if m.compare(m.seq[j], m.seq[i]) < 0 {
			buf[k] = m.seq[j]
			j++
		} else {
			buf[k] = m.seq[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], m.seq[i:mid+1])
	copy(buf[k:], m.seq[j:hi+1])
	copy(m.seq[lo:hi+1], buf)
}

// topDown is the recursive driver; lo == hi is the base case.
func (m *merger[T]) topDown(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)>>1
	m.topDown(lo, mid)
	m.topDown(mid+1, hi)
	m.merge(lo, mid, hi)
}

// bottomUp merges adjacent runs of width 1, 2, 4, … until one run remains.
func (m *merger[T]) bottomUp(lo, hi int) {
	n := hi - lo + 1
	for width := 1; width < n; width <<= 1 {
		for left := lo; left+width <= hi; left += width << 1 {
			mid := left + width - 1
			right := min(left+(width<<1)-1, hi)
			m.merge(left, mid, right)
		}
	}
}

// fork sorts the left half on a new goroutine and the right half on the
// current one, waits for both, then merges. Below threshold, or once depth
// is exhausted, it falls back to topDown.
func (m *merger[T]) fork(lo, hi, threshold, depth int) error {
	if hi-lo+1 <= threshold || depth <= 0 {
		m.topDown(lo, hi)
		return nil
	}
	mid := lo + (hi-lo)>>1

	var g errgroup.Group
	g.Go(func() error {
		return m.fork(lo, mid, threshold, depth-1)
	})
	rightErr := m.fork(mid+1, hi, threshold, depth-1)
	if err := g.Wait(); err != nil {
		return err
	}
	if rightErr != nil {
		return rightErr
	}
	m.merge(lo, mid, hi)

	return nil
}
