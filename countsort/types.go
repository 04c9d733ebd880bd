package countsort

import "errors"

// MaxBuckets is the largest histogram Sort will allocate. The histogram
// spans 1..max(seq), so maxValue itself may be as large as math.MaxInt.
const MaxBuckets = 1 << 24

var (
	// ErrOutOfRange indicates a value outside [1, maxValue].
	ErrOutOfRange = errors.New("countsort: value out of range")

	// ErrInvalidArgument indicates a non-positive maxValue, empty input
	// where a value is required, or values too large to bucket.
	ErrInvalidArgument = errors.New("countsort: invalid argument")
)

// TiePolicy decides the rank order of equal values.
type TiePolicy int

const (
	// LaterFirst gives later occurrences of a value the smaller rank.
	LaterFirst TiePolicy = iota

	// Stable gives earlier occurrences of a value the smaller rank.
	Stable
)

// String implements fmt.Stringer.
func (p TiePolicy) String() string {
	switch p {
	case LaterFirst:
		return "later-first"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// Option configures a Sort call.
type Option func(*Options)

// Options holds the knobs of a Sort call.
type Options struct {
	// Ties is the rank policy for equal values. Default LaterFirst.
	Ties TiePolicy
}

// DefaultOptions returns Options with the LaterFirst tie policy.
func DefaultOptions() Options {
	return Options{Ties: LaterFirst}
}

// WithTiePolicy selects the tie policy. Panics on an unknown policy.
func WithTiePolicy(p TiePolicy) Option {
	if p != LaterFirst && p != Stable {
		panic("countsort: WithTiePolicy(unknown)")
	}
	return func(o *Options) {
		o.Ties = p
	}
}

// Result is the outcome of a counting sort.
//
// Both tables describe the input as it was at call time; they are not
// updated if the caller later mutates the source slice.
type Result struct {
	// Sorted holds the input values in non-decreasing order.
	Sorted []int

	// Rank[i] is the 1-based sorted position of the element originally at i.
	// It is a bijection onto 1..n.
	Rank []int
}

// Order returns the inverse of Rank: Order()[k] is the original index of
// the element with rank k+1.
func (r *Result) Order() []int {
	order := make([]int, len(r.Rank))
	for i, rk := range r.Rank {
		order[rk-1] = i
	}
	return order
}
