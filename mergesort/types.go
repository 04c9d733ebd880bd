package mergesort

import "errors"

var (
	// ErrInvalidBounds is returned when lo or hi do not describe a range of
	// the slice. lo == hi+1 (empty) and lo == hi (single element) are valid.
	ErrInvalidBounds = errors.New("mergesort: invalid bounds")

	// ErrNilComparator is returned by SortFunc when cmp is nil.
	ErrNilComparator = errors.New("mergesort: comparator is nil")

	// ErrOptionConflict indicates WithBottomUp and WithParallel were both set.
	ErrOptionConflict = errors.New("mergesort: bottom-up and parallel modes are exclusive")
)

// Option configures a Sort call.
type Option func(*Options)

// Options holds the knobs of a Sort call.
type Options struct {
	// BottomUp replaces recursion with iterative doubling passes.
	BottomUp bool

	// ParallelThreshold, when > 0, sorts the halves of every range longer
	// than the threshold concurrently. Default 0 (sequential).
	ParallelThreshold int
}

// DefaultOptions returns recursive, sequential Options.
func DefaultOptions() Options {
	return Options{BottomUp: false, ParallelThreshold: 0}
}

// WithBottomUp selects the iterative driver.
func WithBottomUp() Option {
	return func(o *Options) {
		o.BottomUp = true
	}
}

// WithParallel enables concurrent halves for ranges longer than threshold.
// Panics if threshold < 2.
func WithParallel(threshold int) Option {
	if threshold < 2 {
		panic("mergesort: WithParallel(threshold<2)")
	}
	return func(o *Options) {
		o.ParallelThreshold = threshold
	}
}
