// Package lvlseq is a small toolbox of classic sequence algorithms: four
// in-place and index-producing sorts plus Knuth–Morris–Pratt matching, each
// with the invariants that make it testable.
//
// 🚀 What is lvlseq?
//
//	A pure-Go, generic library that brings together:
//		• Quicksort: randomized pivot, two-pointer or three-way partition,
//		  recursive, explicit-stack or parallel driver
//		• Merge sort: stable top-down or bottom-up, custom comparators
//		• Counting sort: sorted output plus a 1-based rank for every element
//		• Radix sort: stable LSD, yields the sorting permutation
//		• KMP: failure table and lazy, overlapping match streams
//
// ✨ Why choose lvlseq?
//
//   - Explicit contracts – every tie-break and bound is pinned by tests
//   - Sentinel errors – callers branch with errors.Is, algorithms never panic
//   - Deterministic when asked – seeded pivots and fixtures reproduce runs
//
// Under the hood, everything is organized under small subpackages:
//
//	quicksort/ — Sort, SortAll, Partition, PartitionThreeWay
//	mergesort/ — Sort, SortAll, SortFunc (stable)
//	countsort/ — Sort → Result{Sorted, Rank}, MaxValue
//	radixsort/ — Sort → permutation, Digits, Apply
//	kmp/       — Preprocess, Search, Matcher, IsRotation
//	seqgen/    — seeded fixtures for tests and benchmarks
//	verify/    — post-condition checkers shared by the tests
//	cmd/lvlseq — command-line harness over stdin
//
// Quick example:
//
//	xs := []int{5, 2, 9, 1}
//	_ = quicksort.Sort(xs, 0, len(xs)-1, quicksort.WithSeed(42))
//	// xs == [1 2 5 9]
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
