// Package verify checks the post-conditions the lvlseq algorithms promise:
// sortedness, multiset preservation, rank-table bijection, permutation-index
// shape and exact match positions.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors.
//   - Is* predicates for tests, Validate* variants for harnesses that need
//     an error to report.
package verify
