// Package kmp implements Knuth–Morris–Pratt exact matching over any
// comparable element type (bytes, runes, ints, …).
//
// What:
//
//   - Preprocess(pattern) builds the failure table: table[i] is the length of
//     the longest proper prefix of pattern that is also a suffix of
//     pattern[0..i]. It is built online, falling back through entries
//     already computed, never restarting.
//   - A Matcher scans text in one forward pass, tracking the length of the
//     longest pattern prefix that ends at the current position. On a
//     mismatch it follows the table (possibly several hops) instead of
//     rewinding the text; when the tracked length reaches len(pattern) a
//     match ENDS at the current position (start = end - len(pattern) + 1).
//
// Surfaces:
//
//   - Scanner    pull-style, single use: Next() until ok == false.
//   - Ends/Starts lazy iter.Seq[int]; each range performs its own fresh pass.
//   - Index, Count, IsRotation helpers for strings.
//
// Complexity:
//
//   - Preprocess: O(m) time and memory.
//   - Scan:       O(n) amortized, independent of alphabet size.
//
// Errors:
//
//   - ErrEmptyPattern   the pattern has no elements; an empty pattern is an
//     invalid input, not a match at every position.
//   - ErrTableMismatch  Search got a table that cannot belong to the pattern.
package kmp
