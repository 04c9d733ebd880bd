package kmp

import (
	"fmt"
	"iter"
)

// Preprocess builds the failure table of pattern.
//
// Example:
//
//	t, _ := kmp.Preprocess([]byte("ababaca"))
//	// t == [0 0 1 2 3 0 1]
func Preprocess[T comparable](pattern []T) (Table, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	table := make(Table, len(pattern))
	// k is the length of the border being extended; it only grows by one
	// per step or falls back to a shorter border already recorded.
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = table[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		table[i] = k
	}
	return table, nil
}

// Compile preprocesses pattern into a reusable Matcher. The pattern is
// copied, so later changes to the caller's slice do not affect it.
func Compile[T comparable](pattern []T) (*Matcher[T], error) {
	table, err := Preprocess(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher[T]{
		pattern: append([]T(nil), pattern...),
		table:   table,
	}, nil
}

// CompileString compiles a byte-wise matcher for pattern.
func CompileString(pattern string) (*Matcher[byte], error) {
	return Compile([]byte(pattern))
}

// Search lazily yields the end positions of pattern in text, using a table
// produced earlier by Preprocess. The table is checked for shape, not
// recomputed. Pattern and table are copied, so the returned sequence is not
// affected by later changes to either slice.
func Search[T comparable](text, pattern []T, table Table) (iter.Seq[int], error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if err := checkTable(table, len(pattern)); err != nil {
		return nil, err
	}
	m := &Matcher[T]{
		pattern: append([]T(nil), pattern...),
		table:   append(Table(nil), table...),
	}
	return m.Ends(text), nil
}

// checkTable rejects tables whose entries could walk the scanner off the
// pattern: length must match, table[0] == 0 and 0 <= table[i] <= i.
func checkTable(table Table, m int) error {
	if len(table) != m {
		return fmt.Errorf("len(table)=%d len(pattern)=%d: %w", len(table), m, ErrTableMismatch)
	}
	for i, v := range table {
		if v < 0 || v > i {
			return fmt.Errorf("table[%d]=%d: %w", i, v, ErrTableMismatch)
		}
	}
	return nil
}

// Len returns the pattern length.
func (m *Matcher[T]) Len() int { return len(m.pattern) }

// Table returns a copy of the failure table.
func (m *Matcher[T]) Table() Table {
	return append(Table(nil), m.table...)
}

// Scan starts a single-use scan of text.
func (m *Matcher[T]) Scan(text []T) *Scanner[T] {
	return &Scanner[T]{m: m, text: text}
}

// Next advances to the next match and returns the index of its last
// element. Overlapping matches are all reported.
func (s *Scanner[T]) Next() (end int, ok bool) {
	p, t := s.m.pattern, s.m.table
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		for s.matched > 0 && c != p[s.matched] {
			s.matched = t[s.matched-1]
		}
		if c == p[s.matched] {
			s.matched++
		}
		end = s.pos
		s.pos++
		if s.matched == len(p) {
			// Continue from the longest border so overlaps are found.
			s.matched = t[s.matched-1]
			return end, true
		}
	}
	return -1, false
}

// Ends lazily yields the end index of every match in text.
func (m *Matcher[T]) Ends(text []T) iter.Seq[int] {
	return func(yield func(int) bool) {
		s := m.Scan(text)
		for {
			end, ok := s.Next()
			if !ok || !yield(end) {
				return
			}
		}
	}
}

// Starts lazily yields the start index of every match in text.
func (m *Matcher[T]) Starts(text []T) iter.Seq[int] {
	return func(yield func(int) bool) {
		for end := range m.Ends(text) {
			if !yield(end - len(m.pattern) + 1) {
				return
			}
		}
	}
}

// Index returns the start of the first match in text, or -1.
func (m *Matcher[T]) Index(text []T) int {
	if end, ok := m.Scan(text).Next(); ok {
		return end - len(m.pattern) + 1
	}
	return -1
}

// Count returns the number of (possibly overlapping) matches in text.
func (m *Matcher[T]) Count(text []T) int {
	n := 0
	for range m.Ends(text) {
		n++
	}
	return n
}
