// SPDX-License-Identifier: MIT
// Package: tspdata/distmatrix
//
// errors.go — sentinel errors for the distmatrix package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers match with errors.Is.
//   • Implementations attach the method name through distmatrixErrorf (%w).
//   • Generation never panics; option constructors (WithX) do on bad input.

package distmatrix

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative matrix order where a materialized matrix was requested.
var ErrBadSize = errors.New("distmatrix: invalid size")

// ErrNilWriter indicates that a nil io.Writer was passed as the output stream.
var ErrNilWriter = errors.New("distmatrix: nil writer")

// ErrNilMatrix indicates that a nil *Matrix was used.
var ErrNilMatrix = errors.New("distmatrix: nil matrix")

// ErrOutOfRange indicates a row or column index outside [0,n).
var ErrOutOfRange = errors.New("distmatrix: index out of range")

// ErrNonZeroDiagonal indicates a diagonal cell that is not exactly 0.
var ErrNonZeroDiagonal = errors.New("distmatrix: diagonal not zero")

// ErrWeightOutOfRange indicates an off-diagonal weight outside [1,maxWeight].
var ErrWeightOutOfRange = errors.New("distmatrix: weight out of range")

// ErrInvalidMaxWeight indicates a weight bound below 1 passed to Validate.
var ErrInvalidMaxWeight = errors.New("distmatrix: max weight must be >= 1")

// distmatrixErrorf formats the message, keeping any %w operand matchable, and
// prefixes it with the method name: "<method>: <message>".
// Complexity: O(len(format) + Σlen(args)).
func distmatrixErrorf(method, format string, args ...interface{}) error {
	var inner error
	inner = fmt.Errorf(format, args...)

	return fmt.Errorf("%s: %w", method, inner)
}
