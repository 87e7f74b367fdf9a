package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillDensity sets each element of buf to 1 with probability density and
// to 0 otherwise. density is clamped to [0, 1].
func FillDensity[T ~uint8](r *RNG, buf []T, density float64) {
	src := r.Source()
	for i := range buf {
		buf[i] = 0
		if density >= 1 || (density > 0 && src.Float64() < density) {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
