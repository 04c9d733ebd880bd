package kmp

// IndexString returns the byte offset of the first occurrence of pattern in
// text, or -1 when there is none.
func IndexString(text, pattern string) (int, error) {
	m, err := CompileString(pattern)
	if err != nil {
		return -1, err
	}
	return m.Index([]byte(text)), nil
}

// CountString returns the number of possibly overlapping occurrences of
// pattern in text.
func CountString(text, pattern string) (int, error) {
	m, err := CompileString(pattern)
	if err != nil {
		return 0, err
	}
	return m.Count([]byte(text)), nil
}

// IsRotation reports whether b is a cyclic rotation of a ("cdab" of
// "abcd"): equal lengths and b occurs in a+a. Two empty strings are
// rotations of each other.
func IsRotation(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	if a == "" {
		return true
	}
	idx, err := IndexString(a+a, b)
	return err == nil && idx >= 0
}
