// Package tspdata generates reproducible distance matrices for
// Travelling Salesman Problem test instances.
//
// What is inside:
//
//	lcg/        — the 32-bit generator: state = state*69069 + 1 (mod 2^32)
//	distmatrix/ — n×n matrices with a zero diagonal and weights in [1,M],
//	              streamed as text (Write, WriteRange) or materialized (Generate)
//	cmd/tspgen/ — prints the reference instances for n = 10..20
//
// Every instance is a pure function of (n, seed, options): the same
// arguments produce byte-identical output on any platform.
//
// Quick example of one block (n = 3, seed = 7):
//
//	data: 3
//	 0 40  3
//	77  0 18
//	42 70  0
//
//	go install github.com/katalvlaran/tspdata/cmd/tspgen@latest
package tspdata
