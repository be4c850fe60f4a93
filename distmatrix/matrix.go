// SPDX-License-Identifier: MIT
// Package: tspdata/distmatrix
//
// matrix.go — the materialized n×n distance matrix.
//
// Storage is a flat row-major []int of length n*n, read-only once Generate
// returns it. Rendering goes through the same renderer as Write, so both
// paths emit identical bytes.

package distmatrix

import (
	"bufio"
	"bytes"
	"io"
)

// Matrix is an n×n integer distance matrix with a zero diagonal.
// A nil *Matrix reads as empty: Size and MaxWeight are 0, Row and Rows
// return nothing, and At, TourCost and WriteTo report ErrNilMatrix.
type Matrix struct {
	n         int   // order
	maxWeight int   // modulus the weights were drawn with (0 when n==0)
	data      []int // row-major, len == n*n
}

// newMatrix allocates a zeroed n×n matrix. n must be >= 0.
// Complexity: O(n²) time and memory.
func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]int, n*n)}
}

// Size returns the matrix order n.
// Complexity: O(1).
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

// MaxWeight returns the modulus M the matrix was drawn with; every
// off-diagonal weight lies in [1,M]. It is 0 for an empty matrix.
// Complexity: O(1).
func (m *Matrix) MaxWeight() int {
	if m == nil {
		return 0
	}
	return m.maxWeight
}

// At returns the weight of edge (i → j).
// Returns ErrOutOfRange when either index is outside [0,n).
// Complexity: O(1).
func (m *Matrix) At(i, j int) (int, error) {
	if m == nil {
		return 0, distmatrixErrorf(MethodAt, "%w", ErrNilMatrix)
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, distmatrixErrorf(MethodAt, "(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Row returns a copy of row i, or nil if i is out of range.
// Complexity: O(n).
func (m *Matrix) Row(i int) []int {
	if m == nil || i < 0 || i >= m.n {
		return nil
	}
	row := make([]int, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])

	return row
}

// Rows returns a deep copy as [][]int, the shape most solvers consume.
// Complexity: O(n²) time and memory.
func (m *Matrix) Rows() [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = m.Row(i)
	}

	return out
}

// TourCost sums the edge weights along path: m[p0][p1] + m[p1][p2] + ...
// The path is scored as given; pass the start vertex again at the end to
// close a cycle. An empty or single-vertex path costs 0.
//
// Errors:
//   - ErrNilMatrix  m is nil.
//   - ErrOutOfRange some vertex is outside [0,n).
//
// Complexity: O(len(path)).
func (m *Matrix) TourCost(path []int) (int, error) {
	if m == nil {
		return 0, distmatrixErrorf(MethodTourCost, "%w", ErrNilMatrix)
	}

	var (
		k    int
		v    int
		cost int
	)
	for k, v = range path {
		if v < 0 || v >= m.n {
			return 0, distmatrixErrorf(MethodTourCost, "path[%d]=%d: %w", k, v, ErrOutOfRange)
		}
	}
	for k = 0; k+1 < len(path); k++ {
		cost += m.data[path[k]*m.n+path[k+1]]
	}

	return cost, nil
}

// WriteTo renders the matrix as one block ("data: <n>", rows, blank line),
// byte-identical to what Write emits for the same size, seed and options.
// Implements io.WriterTo.
// Complexity: O(n²).
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, distmatrixErrorf(MethodWriteTo, "%w", ErrNilMatrix)
	}
	if w == nil {
		return 0, distmatrixErrorf(MethodWriteTo, "%w", ErrNilWriter)
	}

	var buf bytes.Buffer
	m.render(&buf)

	return buf.WriteTo(w)
}

// String implements fmt.Stringer with the block format; "<nil>" for a nil matrix.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var buf bytes.Buffer
	m.render(&buf)

	return buf.String()
}

// render writes the block into buf; writes to a bytes.Buffer cannot fail.
func (m *Matrix) render(buf *bytes.Buffer) {
	var (
		r    *renderer
		i, j int
	)
	r = newRenderer(bufio.NewWriter(buf))
	r.header(m.n)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			r.cell(m.data[i*m.n+j])
		}
		r.endRow()
	}
	_ = r.finish()
}
