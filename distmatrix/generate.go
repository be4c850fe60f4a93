// SPDX-License-Identifier: MIT
// Package: tspdata/distmatrix
//
// generate.go — the cell stream and its two consumers (Write, Generate).

package distmatrix

import (
	"bufio"
	"io"

	"github.com/katalvlaran/tspdata/lcg"
)

// cellFn receives one cell in row-major order.
type cellFn func(a, b, v int)

// drawCells runs the generator over an n×n grid and hands every cell to emit.
// The generator advances once per cell, diagonal included; diagonal values are
// forced to 0 after the draw. n <= 0 draws nothing.
//
// Complexity: O(n²) time, O(1) space.
func drawCells(n int, g *lcg.LCG, cfg config, emit cellFn) {
	if n <= 0 {
		return
	}

	var (
		a, b int
		m    int
		v    int
	)
	m = cfg.modulus(n)
	for a = 0; a < n; a++ {
		for b = 0; b < n; b++ {
			v = g.Intn(m) + 1
			if a == b {
				v = 0
			}
			emit(a, b, v)
		}
	}
}

// Write streams one size×size matrix block, seeded with seed, to w.
//
// The block is "data: <size>\n", then size rows of "%2d " cells each ending
// in "\n", then one blank line. A size <= 0 yields the header and the blank
// line only; this is not an error. Nothing is materialized: each cell is
// formatted as soon as it is drawn.
//
// Output goes through a bufio.Writer; the first write failure is returned.
//
// Complexity: O(size²) time, O(1) extra space.
func Write(w io.Writer, size int, seed uint32, opts ...Option) error {
	if w == nil {
		return distmatrixErrorf(MethodWrite, "%w", ErrNilWriter)
	}

	var (
		cfg config
		r   *renderer
	)
	cfg = newConfig(opts...)
	r = newRenderer(bufio.NewWriter(w))

	r.header(size)
	drawCells(size, lcg.New(seed), cfg, func(_, b, v int) {
		r.cell(v)
		if b == size-1 {
			r.endRow()
		}
	})
	if err := r.finish(); err != nil {
		return distmatrixErrorf(MethodWrite, "size %d: %w", size, err)
	}

	return nil
}

// Generate materializes the size×size matrix for seed and returns it together
// with the generator state after the last draw (seed advanced size² times).
//
// size == 0 yields an empty matrix and the unchanged seed.
// size < 0 or size > MaxGenerateSize returns ErrBadSize.
//
// Complexity: O(size²) time and memory.
func Generate(size int, seed uint32, opts ...Option) (*Matrix, uint32, error) {
	if size < 0 || size > MaxGenerateSize {
		return nil, seed, distmatrixErrorf(MethodGenerate, "size %d: %w", size, ErrBadSize)
	}

	var (
		cfg config
		g   *lcg.LCG
		m   *Matrix
	)
	cfg = newConfig(opts...)
	g = lcg.New(seed)
	m = newMatrix(size)
	if size > 0 {
		m.maxWeight = cfg.modulus(size)
	}

	drawCells(size, g, cfg, func(a, b, v int) {
		m.data[a*size+b] = v
	})

	return m, g.State(), nil
}
