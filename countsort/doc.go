// Package countsort sorts integers drawn from a small known range [1, m]
// without comparisons and reports, for every original position, its 1-based
// rank in sorted order.
//
// Algorithm:
//  1. histogram: count[v] = occurrences of v
//  2. prefix sums: count[v] = number of elements <= v
//  3. assignment walk: each element takes the current count[v] as its rank,
//     then count[v] is decremented.
//
// Tie policy:
//
//	The direction of step 3 decides how equal values are ranked, and it is
//	observable in Result.Rank:
//
//	  LaterFirst (default): walk first→last; the LATER occurrence of a value
//	                         receives the SMALLER rank.
//	                         [3,1,3,2] → Rank [4,1,3,2]
//	  Stable              : walk last→first; equal values keep input order.
//	                         [3,1,3,2] → Rank [3,1,4,2]
//
// Complexity:
//
//   - Time:   O(n + k), k = largest value present (k <= m)
//   - Memory: O(k) buckets plus the O(n) result tables; k is capped at
//     MaxBuckets.
//
// Errors:
//
//   - ErrInvalidArgument  m < 1, a value above MaxBuckets, or MaxValue on an
//     empty sequence.
//   - ErrOutOfRange       a value outside [1, m]; reported before any output
//     is built, naming the first offending index.
package countsort
