// Package radixsort orders non-negative integers of at most d decimal digits
// with least-significant-digit radix sort, producing a permutation index
// rather than moving the values.
//
// How:
//
//	sa starts as the identity permutation 0..n-1. Pass p (p = 0..d-1) runs a
//	counting sort over sa keyed by digit (seq[sa[k]] / 10^p) % 10. Every pass
//	is stable, which is what lets pass p+1 preserve the order established by
//	passes 0..p for equal digits. After d passes sa lists original indices in
//	ascending value order, ties in input order.
//
// Usage:
//
//	sa, err := radixsort.Sort([]int{170, 45, 75, 90, 2, 802, 24, 66}, 3)
//	vals, _ := radixsort.Apply(seq, sa) // [2 24 45 66 75 90 170 802]
//
// Complexity:
//
//   - Time:   O(d·(n + 10))
//   - Memory: O(n) for the permutation and one scratch buffer.
//
// Errors:
//
//   - ErrInvalidArgument  d < 1, or a malformed permutation given to Apply.
//   - ErrOutOfRange       a negative value, or one with more than d digits.
package radixsort
