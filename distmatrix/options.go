// SPDX-License-Identifier: MIT
// Package: tspdata/distmatrix
//
// options.go — functional options and the resolved generator config.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Options apply in order; the last one touching a knob wins.
//   • With no options the output is the reference format (modulus 99).

package distmatrix

// Option customizes generation by mutating a config before the first draw.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all generation knobs. Passed by value.
type config struct {
	// Fixed modulus M; off-diagonal cells fall in [1,M].
	maxWeight int
	// When set, the modulus is SizeWeightFactor*n instead of maxWeight.
	sizeScaled bool
}

// WithMaxWeight sets a fixed weight modulus m, so off-diagonal cells land in [1,m].
// Panics if m < 1. Cancels a previous WithSizeScaledWeights.
// Complexity: O(1).
func WithMaxWeight(m int) Option {
	if m < 1 {
		panic("distmatrix: WithMaxWeight(m<1)")
	}
	return func(c *config) {
		c.maxWeight = m
		c.sizeScaled = false
	}
}

// WithSizeScaledWeights makes the modulus grow with the instance:
// off-diagonal cells of an n×n matrix land in [1, SizeWeightFactor*n].
// Cancels a previous WithMaxWeight.
// Complexity: O(1).
func WithSizeScaledWeights() Option {
	return func(c *config) {
		c.sizeScaled = true
	}
}

// newConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		maxWeight:  DefaultMaxWeight,
		sizeScaled: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// modulus resolves the weight modulus for an n×n matrix.
// Only called for n >= 1, so the result is always >= 1.
func (c config) modulus(n int) int {
	if c.sizeScaled {
		return SizeWeightFactor * n
	}

	return c.maxWeight
}
