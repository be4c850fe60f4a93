package distmatrix

import "io"

// WriteRange writes one block per size n = from..to (inclusive, ascending),
// each seeded with n itself and generated independently of the others.
// from > to writes nothing. Stops at the first write error.
//
// WriteRange(w, DefaultFirstSize, DefaultLastSize) is the reference run.
//
// Complexity: O(Σ n²) time, O(1) extra space.
func WriteRange(w io.Writer, from, to int, opts ...Option) error {
	if w == nil {
		return distmatrixErrorf(MethodWriteRange, "%w", ErrNilWriter)
	}

	var n int
	for n = from; n <= to; n++ {
		if err := Write(w, n, uint32(n), opts...); err != nil {
			return distmatrixErrorf(MethodWriteRange, "%w", err)
		}
	}

	return nil
}
