// SPDX-License-Identifier: MIT
// Package: tspdata/lcg
//
// lcg.go — the 69069 generator and its small helpers.
//
// Goals:
//   - Determinism: same seed ⇒ identical stream across platforms.
//   - No seed remapping: seed==0 is used verbatim (it is a valid state).
//   - No allocations after New; every helper is O(1).

package lcg

const (
	// Multiplier is the LCG multiplier (Marsaglia's 69069).
	Multiplier uint32 = 69069
	// Increment is the additive constant of the recurrence.
	Increment uint32 = 1
)

// LCG holds the mutable generator state.
type LCG struct {
	state uint32
}

// New returns a generator whose state is exactly seed.
// Complexity: O(1).
func New(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the state once and returns the new state.
// Overflow wraps modulo 2^32, which is the modulus of the recurrence.
// Complexity: O(1).
func (g *LCG) Next() uint32 {
	g.state = g.state*Multiplier + Increment
	return g.state
}

// State returns the current state without advancing it.
// Complexity: O(1).
func (g *LCG) State() uint32 {
	return g.state
}

// Intn advances the state and returns it reduced modulo n, i.e. a value in [0, n).
// For n <= 0 it returns 0 and leaves the state untouched.
// Complexity: O(1).
func (g *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	var s uint32
	s = g.Next()
	return int(uint64(s) % uint64(n))
}

// Skip advances the state k times, discarding the draws.
// Complexity: O(k).
func (g *LCG) Skip(k int) {
	var i int
	for i = 0; i < k; i++ {
		g.Next()
	}
}
