// Package quicksort sorts an inclusive range of a caller-owned slice in place
// using randomized quicksort.
//
// 🚀 What it does
//
//	Sort(seq, lo, hi) rearranges seq[lo..hi] into non-decreasing order:
//	  1. pick a uniformly random pivot index p ∈ [lo, hi] and swap it to lo;
//	  2. partition around seq[lo];
//	  3. recurse independently into the parts strictly left and right of
//	     the pivot's resting place.
//
// ✨ Partition schemes
//
//   - TwoPointer (default): scan from the right for an element < pivot, scan
//     from the left for an element > pivot, swap across, repeat until the
//     scans meet, then drop the pivot into the meeting point.
//   - ThreeWay: Dutch-national-flag split into <, == and > runs. Only the
//     outer runs recurse, so inputs with many duplicates stay O(n log n).
//
// ⚙️ Execution modes
//
//   - recursive (default): O(log n) expected stack depth.
//   - WithIterative()    : explicit work stack, no recursion at all.
//   - WithParallel(t)    : ranges longer than t are split across goroutines
//     (errgroup); every branch draws pivots from its own derived RNG stream.
//
// Determinism:
//
//	Without WithSeed/WithRand the pivot stream is freshly seeded per call,
//	which is what keeps adversarial O(n²) inputs improbable. Tests and
//	examples pin it with WithSeed.
//
// Complexity:
//
//   - Time:   O(n log n) expected, O(n²) worst case.
//   - Memory: no allocation besides the recursion (or work) stack.
//
// Errors:
//
//   - ErrInvalidBounds   lo/hi outside the slice or lo > hi+1.
//   - ErrOptionConflict  WithIterative combined with WithParallel.
package quicksort
