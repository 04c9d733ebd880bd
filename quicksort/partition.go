package quicksort

import (
	"cmp"
	"fmt"
)

// partitionTwoPointer partitions seq[lo..hi] around pivot seq[lo] and
// returns the pivot's final index m: seq[lo..m-1] <= seq[m] <= seq[m+1..hi].
//
// The right scan runs first, so when the scans meet seq[i] <= pivot and the
// closing swap with lo is always correct. Comparisons go through cmp.Compare
// so NaN has a place in the order and both scans always make progress.
func partitionTwoPointer[T cmp.Ordered](seq []T, lo, hi int) int {
	pivot := seq[lo]
	i, j := lo, hi
	for i < j {
		for i < j && cmp.Compare(seq[j], pivot) >= 0 {
			j--
		}
		for i < j && cmp.Compare(seq[i], pivot) <= 0 {
			i++
		}
		if i < j {
			seq[i], seq[j] = seq[j], seq[i]
		}
	}
	seq[lo], seq[i] = seq[i], seq[lo]

	return i
}

// partitionThreeWay splits seq[lo..hi] around pivot seq[lo] into
// seq[lo..lt-1] < pivot, seq[lt..gt] == pivot, seq[gt+1..hi] > pivot.
func partitionThreeWay[T cmp.Ordered](seq []T, lo, hi int) (lt, gt int) {
	pivot := seq[lo]
	lt, gt = lo, hi
	i := lo + 1
	for i <= gt {
		switch {
		case cmp.Less(seq[i], pivot):
			seq[lt], seq[i] = seq[i], seq[lt]
			lt++
			i++
		case cmp.Less(pivot, seq[i]):
			seq[i], seq[gt] = seq[gt], seq[i]
			gt--
		default:
			i++
		}
	}

	return lt, gt
}

// Partition moves seq[pivot] to its final sorted position within
// seq[lo..hi] using the two-pointer scheme and returns that position.
// Elements left of it are <= the pivot value, elements right of it are >=.
func Partition[T cmp.Ordered](seq []T, lo, hi, pivot int) (int, error) {
	if err := validateBounds(len(seq), lo, hi); err != nil {
		return 0, err
	}
	if pivot < lo || pivot > hi {
		return 0, fmt.Errorf("pivot %d outside [%d,%d]: %w", pivot, lo, hi, ErrInvalidBounds)
	}
	seq[lo], seq[pivot] = seq[pivot], seq[lo]

	return partitionTwoPointer(seq, lo, hi), nil
}

// PartitionThreeWay splits seq[lo..hi] around the value at seq[pivot] and
// returns the inclusive bounds [lt, gt] of the run equal to it.
func PartitionThreeWay[T cmp.Ordered](seq []T, lo, hi, pivot int) (lt, gt int, err error) {
	if err = validateBounds(len(seq), lo, hi); err != nil {
		return 0, 0, err
	}
	if pivot < lo || pivot > hi {
		return 0, 0, fmt.Errorf("pivot %d outside [%d,%d]: %w", pivot, lo, hi, ErrInvalidBounds)
	}
	seq[lo], seq[pivot] = seq[pivot], seq[lo]
	lt, gt = partitionThreeWay(seq, lo, hi)

	return lt, gt, nil
}

// validateBounds accepts 0 <= lo <= hi+1 <= n.
func validateBounds(n, lo, hi int) error {
	if lo < 0 || hi >= n || lo > hi+1 {
		return fmt.Errorf("lo=%d hi=%d len=%d: %w", lo, hi, n, ErrInvalidBounds)
	}
	return nil
}
