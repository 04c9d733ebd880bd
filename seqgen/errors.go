// SPDX-License-Identifier: MIT

package seqgen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative length (or an inverted value range passed
// directly to Bounded).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("seqgen: invalid size/length")

// Method tokens used as error context prefixes.
const (
	MethodInts    = "Ints"
	MethodBounded = "Bounded"
	MethodString  = "String"
)

// seqgenErrorf prefixes err with the generator name, keeping the sentinel
// reachable through errors.Is.
func seqgenErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
