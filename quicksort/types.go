package quicksort

import (
	"errors"
	"math/rand"
)

// Scheme selects the partitioning strategy.
type Scheme int

const (
	// TwoPointer is the Hoare-style two-scan partition around seq[lo].
	TwoPointer Scheme = iota

	// ThreeWay splits the range into <, == and > runs around the pivot.
	ThreeWay
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case TwoPointer:
		return "two-pointer"
	case ThreeWay:
		return "three-way"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidBounds is returned when lo or hi do not describe a range of
	// the slice. lo == hi+1 (empty) and lo == hi (single element) are valid.
	ErrInvalidBounds = errors.New("quicksort: invalid bounds")

	// ErrOptionConflict indicates WithIterative and WithParallel were both set.
	ErrOptionConflict = errors.New("quicksort: iterative and parallel modes are exclusive")
)

// Option configures a Sort call.
type Option func(*Options)

// Options holds the knobs of a Sort call.
type Options struct {
	// Scheme is the partition strategy. Default TwoPointer.
	Scheme Scheme

	// Iterative replaces recursion with an explicit work stack.
	Iterative bool

	// ParallelThreshold, when > 0, sorts the two sides of every range longer
	// than the threshold concurrently. Default 0 (sequential).
	ParallelThreshold int

	// Rand is the pivot source. nil means a freshly seeded stream per call.
	// A *rand.Rand is not goroutine-safe: do not share one across
	// concurrent Sort calls.
	Rand *rand.Rand
}

// DefaultOptions returns Options with:
//   - TwoPointer partitioning
//   - recursive, sequential execution
//   - a fresh pivot stream per call
func DefaultOptions() Options {
	return Options{
		Scheme:            TwoPointer,
		Iterative:         false,
		ParallelThreshold: 0,
		Rand:              nil,
	}
}

// WithScheme selects the partition strategy. Panics on an unknown Scheme.
func WithScheme(s Scheme) Option {
	if s != TwoPointer && s != ThreeWay {
		panic("quicksort: WithScheme(unknown)")
	}
	return func(o *Options) {
		o.Scheme = s
	}
}

// WithIterative runs the sort on an explicit work stack.
func WithIterative() Option {
	return func(o *Options) {
		o.Iterative = true
	}
}

// WithParallel enables concurrent recursion for ranges longer than
// threshold elements. Panics if threshold < 2.
func WithParallel(threshold int) Option {
	if threshold < 2 {
		panic("quicksort: WithParallel(threshold<2)")
	}
	return func(o *Options) {
		o.ParallelThreshold = threshold
	}
}

// WithRand supplies the pivot RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("quicksort: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed pins the pivot stream to a deterministic seed.
// Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}
