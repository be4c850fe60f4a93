// Package distmatrix generates synthetic TSP distance matrices.
//
// Every matrix is driven by a fresh lcg.LCG seeded by the caller. Cells are
// drawn in row-major order; each cell advances the generator exactly once,
// including diagonal cells, whose printed value is then forced to 0:
//
//	for a in [0,n): for b in [0,n):
//	    v = lcg.Next() % M + 1
//	    if a == b { v = 0 }
//
// M is the weight modulus (99 by default, see WithMaxWeight and
// WithSizeScaledWeights), so off-diagonal weights always lie in [1, M].
//
// The package offers two renditions of the same stream:
//
//   - Write streams a block straight to an io.Writer without materializing it.
//   - Generate returns an in-memory *Matrix (plus the final generator state)
//     for callers that need random access; (*Matrix).WriteTo renders the
//     exact same bytes as Write.
//
// Block format (one per matrix):
//
//	data: <n>
//	<v00> <v01> ... <v0,n-1>   (each value "%2d ", trailing space included)
//	...
//	<blank line>
//
// WriteRange drives the reference run: sizes 10..20, each seeded with its
// own size.
//
// Errors are package-level sentinels (see errors.go) wrapped with the
// calling method's name; match them with errors.Is. Option constructors
// panic on meaningless values, generation itself never panics.
package distmatrix
