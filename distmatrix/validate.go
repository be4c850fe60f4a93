// SPDX-License-Identifier: MIT
// Package: tspdata/distmatrix
//
// validate.go — checks a materialized matrix against the generator's
// output invariants: zero diagonal, off-diagonal weights in [1,maxWeight].
//
// Deterministic and side-effect free; only sentinel errors, no panics.

package distmatrix

// Validate reports the first invariant violation in m, scanning the diagonal
// first and then off-diagonal cells in row-major order.
//
// Errors:
//   - ErrNilMatrix        m is nil.
//   - ErrInvalidMaxWeight maxWeight < 1.
//   - ErrNonZeroDiagonal  some m[i][i] != 0.
//   - ErrWeightOutOfRange some off-diagonal m[i][j] outside [1,maxWeight].
//
// Complexity: O(n²) time, O(1) space.
func Validate(m *Matrix, maxWeight int) error {
	if m == nil {
		return distmatrixErrorf(MethodValidate, "%w", ErrNilMatrix)
	}
	if maxWeight < 1 {
		return distmatrixErrorf(MethodValidate, "maxWeight=%d: %w", maxWeight, ErrInvalidMaxWeight)
	}

	var (
		n    int
		i, j int
		v    int
	)
	n = m.n

	// Stage 1: diagonal.
	for i = 0; i < n; i++ {
		v = m.data[i*n+i]
		if v != 0 {
			return distmatrixErrorf(MethodValidate, "(%d,%d)=%d: %w", i, i, v, ErrNonZeroDiagonal)
		}
	}

	// Stage 2: off-diagonal range.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = m.data[i*n+j]
			if v < 1 || v > maxWeight {
				return distmatrixErrorf(MethodValidate, "(%d,%d)=%d not in [1,%d]: %w", i, j, v, maxWeight, ErrWeightOutOfRange)
			}
		}
	}

	return nil
}
