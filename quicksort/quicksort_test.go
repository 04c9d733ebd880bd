package quicksort_test

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlseq/quicksort"
	"github.com/katalvlaran/lvlseq/seqgen"
	"github.com/katalvlaran/lvlseq/verify"
)

// modes enumerates every driver/scheme combination under test.
var modes = []struct {
	name string
	opts []quicksort.Option
}{
	{"recursive/two-pointer", nil},
	{"recursive/three-way", []quicksort.Option{quicksort.WithScheme(quicksort.ThreeWay)}},
	{"iterative/two-pointer", []quicksort.Option{quicksort.WithIterative()}},
	{"iterative/three-way", []quicksort.Option{quicksort.WithIterative(), quicksort.WithScheme(quicksort.ThreeWay)}},
	{"parallel/two-pointer", []quicksort.Option{quicksort.WithParallel(8)}},
	{"parallel/three-way", []quicksort.Option{quicksort.WithParallel(8), quicksort.WithScheme(quicksort.ThreeWay)}},
}

// QuickSortSuite groups the property checks shared by all modes.
type QuickSortSuite struct {
	suite.Suite
}

// TestSortedPermutation: for random inputs every mode yields a sorted
// permutation of the input.
func (s *QuickSortSuite) TestSortedPermutation() {
	for _, m := range modes {
		for seed := int64(1); seed <= 40; seed++ {
			in, err := seqgen.Ints(int(seed)*7, seqgen.WithSeed(seed), seqgen.WithRange(-20, 20))
			s.Require().NoError(err)
			got := slices.Clone(in)

			opts := append([]quicksort.Option{quicksort.WithSeed(seed)}, m.opts...)
			s.Require().NoError(quicksort.Sort(got, 0, len(got)-1, opts...), m.name)
			s.Require().True(verify.IsSorted(got), "%s seed=%d: %v", m.name, seed, got)
			s.Require().True(verify.IsPermutation(in, got), "%s seed=%d", m.name, seed)
		}
	}
}

// TestAdversarialShapes covers sorted, reversed and constant inputs.
func (s *QuickSortSuite) TestAdversarialShapes() {
	const n = 2000
	asc := make([]int, n)
	desc := make([]int, n)
	flat := make([]int, n)
	for i := 0; i < n; i++ {
		asc[i] = i
		desc[i] = n - i
		flat[i] = 7
	}
	for _, m := range modes {
		for _, in := range [][]int{asc, desc, flat} {
			got := slices.Clone(in)
			s.Require().NoError(quicksort.Sort(got, 0, n-1, m.opts...))
			want := slices.Clone(in)
			slices.Sort(want)
			s.Require().Equal(want, got, m.name)
		}
	}
}

// TestSubRangeOnly checks elements outside [lo,hi] are untouched.
func (s *QuickSortSuite) TestSubRangeOnly() {
	for _, m := range modes {
		got := []int{9, 8, 5, 3, 4, 1, 0, -1}
		s.Require().NoError(quicksort.Sort(got, 2, 5, m.opts...))
		s.Require().Equal([]int{9, 8, 1, 3, 4, 5, 0, -1}, got, m.name)
	}
}

func TestQuickSortSuite(t *testing.T) {
	suite.Run(t, new(QuickSortSuite))
}

func TestSort_Idempotent(t *testing.T) {
	xs := []int{1, 2, 2, 3, 10, 11}
	want := slices.Clone(xs)
	require.NoError(t, quicksort.Sort(xs, 0, len(xs)-1, quicksort.WithSeed(4)))
	require.Equal(t, want, xs)
}

func TestSort_NoOpRanges(t *testing.T) {
	var empty []int
	require.NoError(t, quicksort.Sort(empty, 0, -1))

	xs := []int{3, 2, 1}
	require.NoError(t, quicksort.Sort(xs, 1, 1))
	require.NoError(t, quicksort.Sort(xs, 2, 1))
	require.Equal(t, []int{3, 2, 1}, xs)
}

func TestSort_InvalidBounds(t *testing.T) {
	xs := []int{3, 2, 1}
	for _, b := range [][2]int{{-1, 2}, {0, 3}, {3, 1}, {0, 5}} {
		err := quicksort.Sort(xs, b[0], b[1])
		require.ErrorIs(t, err, quicksort.ErrInvalidBounds, "lo=%d hi=%d", b[0], b[1])
	}
	require.Equal(t, []int{3, 2, 1}, xs, "rejected calls must not mutate")
}

func TestSort_OptionConflict(t *testing.T) {
	xs := []int{2, 1}
	err := quicksort.Sort(xs, 0, 1, quicksort.WithIterative(), quicksort.WithParallel(4))
	require.ErrorIs(t, err, quicksort.ErrOptionConflict)

	// SortAll resolves the conflict instead of failing.
	quicksort.SortAll(xs, quicksort.WithIterative(), quicksort.WithParallel(4))
	require.Equal(t, []int{1, 2}, xs)
}

func TestSort_StringsAndFloats(t *testing.T) {
	words := []string{"pear", "apple", "fig", "apple"}
	quicksort.SortAll(words, quicksort.WithSeed(1))
	require.Equal(t, []string{"apple", "apple", "fig", "pear"}, words)

	fs := []float64{2.5, -1, 0, 2.5, 1e9}
	quicksort.SortAll(fs, quicksort.WithRand(rand.New(rand.NewSource(3))))
	require.Equal(t, []float64{-1, 0, 2.5, 2.5, 1e9}, fs)

	// NaN orders before every number, as under cmp.Compare, in every mode.
	nan := math.NaN()
	large := make([]float64, 200)
	for i := range large {
		large[i] = float64((i * 37) % 23)
		if i%5 == 0 {
			large[i] = nan
		}
	}
	for _, m := range modes {
		opts := append([]quicksort.Option{quicksort.WithSeed(1)}, m.opts...)
		for _, in := range [][]float64{
			{1, nan, nan},
			{nan, nan, nan, nan},
			{1, nan, 3, nan, -2, 0, nan, 3},
			large,
		} {
			got := slices.Clone(in)
			require.NoError(t, quicksort.Sort(got, 0, len(got)-1, opts...), m.name)
			require.True(t, slices.IsSortedFunc(got, cmp.Compare[float64]), "%s: %v", m.name, got)
			require.True(t, verify.IsSorted(got), "%s: %v", m.name, got)

			nans := 0
			for _, v := range in {
				if math.IsNaN(v) {
					nans++
				}
			}
			for k, v := range got {
				require.Equal(t, k < nans, math.IsNaN(v), "%s: index %d of %v", m.name, k, got)
			}
		}
	}
}

// TestSort_ParallelMatchesSequential: both drivers agree on the output.
func TestSort_ParallelMatchesSequential(t *testing.T) {
	in, err := seqgen.Ints(300, seqgen.WithSeed(11))
	require.NoError(t, err)
	a, b := slices.Clone(in), slices.Clone(in)
	quicksort.SortAll(a, quicksort.WithSeed(5), quicksort.WithParallel(16))
	quicksort.SortAll(b, quicksort.WithSeed(5))
	require.Equal(t, a, b)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { quicksort.WithRand(nil) })
	require.Panics(t, func() { quicksort.WithParallel(1) })
	require.Panics(t, func() { quicksort.WithScheme(quicksort.Scheme(9)) })
}

func TestScheme_String(t *testing.T) {
	require.Equal(t, "two-pointer", quicksort.TwoPointer.String())
	require.Equal(t, "three-way", quicksort.ThreeWay.String())
	require.Equal(t, "unknown", quicksort.Scheme(-1).String())
}

func TestDeriveSeed_Decorrelates(t *testing.T) {
	require.NotEqual(t, quicksort.DeriveSeed(1, 1), quicksort.DeriveSeed(1, 2))
	require.Equal(t, quicksort.DeriveSeed(7, 3), quicksort.DeriveSeed(7, 3))
}
