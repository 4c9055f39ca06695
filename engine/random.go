package engine

import "math/rand/v2"

// RandomSource picks target indices
// IntN returns a value in [0, n)
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source
// Seed 0 draws a fresh seed from the runtime generator
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
