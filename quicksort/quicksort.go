package quicksort

import (
	"cmp"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// sorter carries the per-call state shared by every execution mode.
type sorter[T cmp.Ordered] struct {
	seq    []T
	scheme Scheme
}

// span is an inclusive range awaiting work on the explicit stack.
type span struct {
	lo, hi int
}

// Sort rearranges seq[lo..hi] (inclusive) into non-decreasing order.
// Ranges of length ≤ 1 are a no-op. Values are ordered as by cmp.Compare,
// so floating-point NaNs sort before every other value.
//
// Example:
//
//	xs := []int{5, 2, 9, 1}
//	err := quicksort.Sort(xs, 0, len(xs)-1, quicksort.WithSeed(7))
//	// xs == [1 2 5 9]
func Sort[T cmp.Ordered](seq []T, lo, hi int, opts ...Option) error {
	// 1. Validate the range before touching options or memory.
	if err := validateBounds(len(seq), lo, hi); err != nil {
		return err
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Iterative && o.ParallelThreshold > 0 {
		return ErrOptionConflict
	}

	return sortWith(seq, lo, hi, o)
}

// SortAll sorts the whole slice. It cannot fail: a conflicting
// WithParallel is dropped in favor of WithIterative.
func SortAll[T cmp.Ordered](seq []T, opts ...Option) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Iterative {
		o.ParallelThreshold = 0
	}
	_ = sortWith(seq, 0, len(seq)-1, o)
}

// sortWith dispatches a validated range to the configured driver.
func sortWith[T cmp.Ordered](seq []T, lo, hi int, o Options) error {
	if hi-lo < 1 {
		return nil
	}
	rng := o.Rand
	if rng == nil {
		rng = freshRNG()
	}
	s := sorter[T]{seq: seq, scheme: o.Scheme}

	switch {
	case o.Iterative:
		s.iterate(lo, hi, rng)
	case o.ParallelThreshold > 0:
		return s.parallel(lo, hi, rng, o.ParallelThreshold)
	default:
		s.recurse(lo, hi, rng)
	}

	return nil
}

// split picks a random pivot, partitions seq[lo..hi] and returns the
// inclusive end of the left part and the start of the right part.
func (s sorter[T]) split(lo, hi int, rng *rand.Rand) (leftHi, rightLo int) {
	p := lo + rng.Intn(hi-lo+1)
	s.seq[lo], s.seq[p] = s.seq[p], s.seq[lo]

	if s.scheme == ThreeWay {
		lt, gt := partitionThreeWay(s.seq, lo, hi)
		return lt - 1, gt + 1
	}
	m := partitionTwoPointer(s.seq, lo, hi)

	return m - 1, m + 1
}

// recurse is the textbook recursive driver.
func (s sorter[T]) recurse(lo, hi int, rng *rand.Rand) {
	if hi-lo < 1 {
		return
	}
	leftHi, rightLo := s.split(lo, hi, rng)
	s.recurse(lo, leftHi, rng)
	s.recurse(rightLo, hi, rng)
}

// iterate drives the same splits from an explicit LIFO stack. The larger
// side is pushed first so the stack stays O(log n) deep on average.
func (s sorter[T]) iterate(lo, hi int, rng *rand.Rand) {
	stack := []span{{lo: lo, hi: hi}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.hi-top.lo < 1 {
			continue
		}
		leftHi, rightLo := s.split(top.lo, top.hi, rng)
		left, right := span{lo: top.lo, hi: leftHi}, span{lo: rightLo, hi: top.hi}
		if left.hi-left.lo > right.hi-right.lo {
			stack = append(stack, left, right)
		} else {
			stack = append(stack, right, left)
		}
	}
}

// parallel sorts seq[lo..hi] with up to GOMAXPROCS concurrent branches.
// Ranges at or below threshold fall back to the sequential driver.
func (s sorter[T]) parallel(lo, hi int, rng *rand.Rand, threshold int) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	s.branch(&g, lo, hi, rng, threshold)

	return g.Wait()
}

// branch peels off the left side of every large split into its own
// goroutine and keeps the right side on the current one. TryGo is used so a
// saturated group degrades to inline work instead of blocking a branch that
// already holds a slot.
func (s sorter[T]) branch(g *errgroup.Group, lo, hi int, rng *rand.Rand, threshold int) {
	for hi-lo+1 > threshold {
		leftHi, rightLo := s.split(lo, hi, rng)
		childLo, childHi := lo, leftHi
		child := deriveRNG(rng, uint64(childHi-childLo+1))
		run := func() error {
			s.branch(g, childLo, childHi, child, threshold)
			return nil
		}
		if !g.TryGo(run) {
			_ = run()
		}
		lo = rightLo
	}
	s.recurse(lo, hi, rng)
}
