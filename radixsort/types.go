package radixsort

import (
	"errors"
	"strconv"
)

// radix is the base of every counting pass.
const radix = 10

// maxIntDigits is the decimal width of math.MaxInt: 19 for a 64-bit int,
// 10 for a 32-bit one. Passes beyond it only see zero digits.
const maxIntDigits = 10 + 9*(strconv.IntSize/64)

var (
	// ErrOutOfRange indicates a negative value or one wider than the
	// declared digit count.
	ErrOutOfRange = errors.New("radixsort: value out of range")

	// ErrInvalidArgument indicates a non-positive digit count or a
	// malformed permutation.
	ErrInvalidArgument = errors.New("radixsort: invalid argument")
)
