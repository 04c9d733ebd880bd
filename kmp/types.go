package kmp

import "errors"

var (
	// ErrEmptyPattern is returned for a zero-length pattern.
	ErrEmptyPattern = errors.New("kmp: pattern is empty")

	// ErrTableMismatch is returned when a failure table has the wrong length
	// or holds entries no failure table can hold (table[i] > i or < 0).
	ErrTableMismatch = errors.New("kmp: failure table does not fit pattern")
)

// Table is a failure table. table[i] is the length of the longest proper
// prefix of the pattern that is also a suffix of pattern[0..i].
// Tables are immutable once built; Matcher.Table hands out copies.
type Table []int

// Matcher is a compiled pattern: the pattern elements plus their failure
// table. A Matcher is read-only after Compile and safe for concurrent use;
// the Scanners it creates are not.
type Matcher[T comparable] struct {
	pattern []T
	table   Table
}

// Scanner walks one text once, yielding match end positions in increasing
// order. It keeps only the text position and the current matched-prefix
// length. Once Next reports ok == false the scanner stays exhausted.
type Scanner[T comparable] struct {
	m       *Matcher[T]
	text    []T
	pos     int
	matched int
}
