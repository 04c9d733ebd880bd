// Package mergesort implements a stable merge sort over an inclusive range
// of a caller-owned slice.
//
// What:
//
//   - Sort(seq, lo, hi): recursively sort the two halves, then merge them by
//     repeatedly taking the smaller head. On ties the left head wins, which
//     is what makes the sort stable.
//   - SortFunc(seq, lo, hi, cmp): same algorithm driven by a comparator, so
//     records can be ordered by a key while equal keys keep input order
//     (the usual way to build a secondary sort on top of a primary one).
//
// Why:
//
//   - Guaranteed O(n log n) time regardless of input shape.
//   - Stability, which quicksort does not give.
//
// Options:
//
//   - WithBottomUp()      iterative passes of width 1, 2, 4, … instead of recursion.
//   - WithParallel(t)     halves longer than t are sorted on separate goroutines
//     before the merge. Each half owns a disjoint window of the auxiliary
//     buffer, so no locking is involved.
//
// Complexity:
//
//   - Time:   O(n log n)
//   - Memory: O(n) auxiliary buffer, allocated once per call.
//
// Errors:
//
//   - ErrInvalidBounds    lo/hi outside the slice or lo > hi+1.
//   - ErrNilComparator    SortFunc called with a nil comparator.
//   - ErrOptionConflict   WithBottomUp combined with WithParallel.
package mergesort
