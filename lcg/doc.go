// Package lcg provides the 32-bit linear congruential generator used to
// synthesize TSP distance matrices.
//
// The recurrence is fixed:
//
//	state = (state*69069 + 1) mod 2^32
//
// Multiplier and increment never change and the modulus is the implicit
// uint32 wraparound, so a given seed yields the same stream on every
// platform and in every reimplementation of the generator. This is NOT a
// statistically strong or cryptographic source; it exists only to reproduce
// reference test instances bit-for-bit.
//
// Concurrency:
//   - An *LCG is NOT goroutine-safe. Create one per generation.
package lcg
