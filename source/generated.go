package source

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distmv"

	"github.com/arloliu/persuade/types"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
//
// n == 1 yields {lo}; n <= 0 yields nil. The last value is pinned to hi.
func Linspace(n int, lo, hi float64) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range n {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out
}

// Dirichlet draws one sample from the flat Dirichlet(1,...,1) distribution
// using src. n <= 0 yields nil.
func Dirichlet(src rand.Source, n int) []float64 {
	if n <= 0 {
		return nil
	}

	alpha := make([]float64, n)
	for i := range alpha {
		alpha[i] = 1
	}

	return distmv.NewDirichlet(alpha, src).Rand(nil)
}

// Generated produces a reproducible synthetic belief distribution.
type Generated struct {
	points   int
	min, max float64
	seed     int64
}

var _ types.DistributionSource = (*Generated)(nil)

// NewGenerated creates a generator for n beliefs evenly spaced over
// [minBelief, maxBelief] with Dirichlet(1) probabilities drawn from seed.
//
// Parameters:
//   - n: Number of points (>= 1)
//   - minBelief, maxBelief: Belief range, 0 <= minBelief <= maxBelief <= 1
//   - seed: Seed for the probability draw
//
// Returns:
//   - *Generated: Generator; every Distribution call returns the same result
//
// Example:
//
//	src := source.NewGenerated(20, 0, 1, 42)
//	dist, err := src.Distribution(ctx)
func NewGenerated(n int, minBelief, maxBelief float64, seed int64) *Generated {
	return &Generated{points: n, min: minBelief, max: maxBelief, seed: seed}
}

// Distribution builds the distribution.
//
// Returns:
//   - types.BeliefDistribution: Ascending beliefs with probabilities summing to 1
//   - error: ErrInvalidInput for a bad point count or belief range, or ctx.Err()
func (g *Generated) Distribution(ctx context.Context) (types.BeliefDistribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.points < 1 {
		return nil, fmt.Errorf("%w: generated distribution needs at least one point, got %d", types.ErrInvalidInput, g.points)
	}
	if g.min < 0 || g.max > 1 || g.min > g.max {
		return nil, fmt.Errorf("%w: belief range [%v, %v] must lie within [0, 1]", types.ErrInvalidInput, g.min, g.max)
	}

	src := rand.NewPCG(uint64(g.seed), 0) //nolint:gosec // bit pattern only

	return types.NewBeliefDistribution(Linspace(g.points, g.min, g.max), Dirichlet(src, g.points))
}
