package verify

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	// ErrNotSorted indicates an adjacent pair out of order.
	ErrNotSorted = errors.New("verify: sequence is not sorted")

	// ErrNotPermutation indicates two sequences hold different multisets.
	ErrNotPermutation = errors.New("verify: sequences are not permutations of each other")

	// ErrNotBijection indicates a rank table or index permutation that does
	// not hit every slot exactly once.
	ErrNotBijection = errors.New("verify: table is not a bijection")

	// ErrBadMatch indicates a reported match position that is not an
	// occurrence of the pattern.
	ErrBadMatch = errors.New("verify: reported match does not occur in text")
)

// IsSorted reports whether seq is non-decreasing under cmp.Compare
// (NaNs first).
func IsSorted[T cmp.Ordered](seq []T) bool {
	return ValidateSorted(seq) == nil
}

// ValidateSorted returns ErrNotSorted naming the first descent.
func ValidateSorted[T cmp.Ordered](seq []T) error {
	for i := 1; i < len(seq); i++ {
		if cmp.Less(seq[i], seq[i-1]) {
			return fmt.Errorf("index %d: %v < %v: %w", i, seq[i], seq[i-1], ErrNotSorted)
		}
	}
	return nil
}

// IsSortedFunc reports whether seq is non-decreasing under compare.
func IsSortedFunc[T any](seq []T, compare func(a, b T) int) bool {
	for i := 1; i < len(seq); i++ {
		if compare(seq[i], seq[i-1]) < 0 {
			return false
		}
	}
	return true
}

// IsPermutation reports whether a and b hold the same multiset.
func IsPermutation[T comparable](a, b []T) bool {
	return ValidatePermutation(a, b) == nil
}

// ValidatePermutation returns ErrNotPermutation when the multisets differ.
//
// Complexity: O(n) time, O(distinct) space.
func ValidatePermutation[T comparable](a, b []T) error {
	if len(a) != len(b) {
		return fmt.Errorf("len %d != %d: %w", len(a), len(b), ErrNotPermutation)
	}
	ca, cb := lo.CountValues(a), lo.CountValues(b)
	for v, n := range ca {
		if cb[v] != n {
			return fmt.Errorf("value %v: %d vs %d occurrences: %w", v, n, cb[v], ErrNotPermutation)
		}
	}
	return nil
}

// IsRankBijection reports whether rank maps its n positions onto 1..n.
func IsRankBijection(rank []int) bool {
	return ValidateRankBijection(rank) == nil
}

// ValidateRankBijection checks rank is a bijection onto [1, len(rank)].
func ValidateRankBijection(rank []int) error {
	return validateBijection(rank, 1)
}

// IsPermutationIndex reports whether perm is a bijection onto [0, n).
func IsPermutationIndex(perm []int, n int) bool {
	return ValidatePermutationIndex(perm, n) == nil
}

// ValidatePermutationIndex checks perm has length n and hits 0..n-1 once.
func ValidatePermutationIndex(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("len %d != %d: %w", len(perm), n, ErrNotBijection)
	}
	return validateBijection(perm, 0)
}

// validateBijection checks table hits base..base+len-1 exactly once.
func validateBijection(table []int, base int) error {
	seen := make([]bool, len(table))
	for i, v := range table {
		k := v - base
		if k < 0 || k >= len(table) {
			return fmt.Errorf("index %d: value %d out of [%d,%d]: %w", i, v, base, base+len(table)-1, ErrNotBijection)
		}
		if seen[k] {
			return fmt.Errorf("index %d: value %d repeated: %w", i, v, ErrNotBijection)
		}
		seen[k] = true
	}
	return nil
}

// MatchesAt reports whether pattern occurs in text starting at start.
func MatchesAt[T comparable](text, pattern []T, start int) bool {
	if start < 0 || start+len(pattern) > len(text) {
		return false
	}
	for k := range pattern {
		if text[start+k] != pattern[k] {
			return false
		}
	}
	return true
}

// ValidateMatches checks every start in starts is a real occurrence.
func ValidateMatches[T comparable](text, pattern []T, starts []int) error {
	for _, s := range starts {
		if !MatchesAt(text, pattern, s) {
			return fmt.Errorf("start %d: %w", s, ErrBadMatch)
		}
	}
	return nil
}

// NaiveStarts returns every start position of pattern in text by brute
// force. It is the O(n·m) reference the linear matcher is checked against.
func NaiveStarts[T comparable](text, pattern []T) []int {
	var out []int
	if len(pattern) == 0 {
		return out
	}
	for s := 0; s+len(pattern) <= len(text); s++ {
		if MatchesAt(text, pattern, s) {
			out = append(out, s)
		}
	}
	return out
}
