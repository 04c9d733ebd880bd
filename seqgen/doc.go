// SPDX-License-Identifier: MIT

// Package seqgen builds deterministic fixture sequences for the lvlseq
// algorithms: signed integer slices, bounded integer slices and strings over
// a fixed alphabet.
//
// Every generator is driven by functional options in the same style across
// the module:
//
//	xs, err := seqgen.Ints(1000, seqgen.WithSeed(42), seqgen.WithRange(-50, 50))
//	ds, err := seqgen.Bounded(1000, 1, 9, seqgen.WithSeed(7))
//	s, err  := seqgen.String(64, seqgen.WithAlphabet("ab"), seqgen.WithSeed(1))
//
// Contract:
//   - Same options ⇒ identical output on every platform.
//   - Option constructors validate and PANIC on meaningless input
//     (WithRand(nil), WithRange(min>max), WithAlphabet("")).
//   - Generators never panic; they return ErrBadSize for negative lengths.
//
// Complexity: O(n) time and O(n) space for every generator.
package seqgen
