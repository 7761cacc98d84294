package planner

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultNoiseStdDev is the standard deviation used by the noisy-oracle mode
// when none is configured.
const DefaultNoiseStdDev = 0.02

// NoiseSource returns the deterministic random source used for a noise seed.
func NoiseSource(seed int64) rand.Source {
	return rand.NewPCG(uint64(seed), 0) //nolint:gosec // bit pattern only
}

// Perturb returns a copy of beliefs with independent zero-mean Gaussian noise
// added to each value and the result clipped to [0,1].
//
// The caller owns src; the same seed yields the same perturbation. The input
// slice is not modified and the output is not re-sorted.
//
// Parameters:
//   - beliefs: Beliefs to perturb
//   - stdDev: Noise standard deviation (>= 0)
//   - src: Explicitly seeded random source
//
// Returns:
//   - []float64: Perturbed beliefs
func Perturb(beliefs []float64, stdDev float64, src rand.Source) []float64 {
	noise := distuv.Normal{Mu: 0, Sigma: stdDev, Src: src}

	out := make([]float64, len(beliefs))
	for i, b := range beliefs {
		out[i] = clamp01(b + noise.Rand())
	}

	return out
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
