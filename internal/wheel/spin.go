package wheel

import "math/rand/v2"

const (
	// MinExtraSpins and MaxExtraSpins bound the whole turns added by a spin.
	MinExtraSpins = 6
	MaxExtraSpins = 10
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// StdRNG delegates to the auto-seeded math/rand/v2 source.
type StdRNG struct{}

func (StdRNG) IntN(n int) int   { return rand.IntN(n) }
func (StdRNG) Float64() float64 { return rand.Float64() }

// SpinTarget returns the rotation a new spin adds: a whole number of extra
// turns in [MinExtraSpins, MaxExtraSpins] plus a uniform offset in [0, 360).
// The offset is independent of the slice layout.
func SpinTarget(rng RNG) float64 {
	extra := MinExtraSpins + rng.IntN(MaxExtraSpins-MinExtraSpins+1)
	offset := rng.Float64() * FullTurn
	if offset >= FullTurn {
		offset = 0
	}
	return float64(extra)*FullTurn + offset
}
