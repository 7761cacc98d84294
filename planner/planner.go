package planner

import (
	"fmt"
	"math"

	"github.com/arloliu/persuade/types"
)

// DP implements the budgeted threshold planner with dynamic programming.
type DP struct {
	noise *noiseConfig
}

// noiseConfig enables the noisy-oracle mode.
type noiseConfig struct {
	stdDev float64
	seed   int64
}

var _ types.ThresholdPlanner = (*DP)(nil)

// Option configures a DP planner.
type Option func(*DP)

// New creates a DP planner.
//
// Parameters:
//   - opts: Optional configuration (WithNoise)
//
// Returns:
//   - *DP: Initialized planner
//
// Example:
//
//	p := planner.New(planner.WithNoise(0.02, 42))
//	res, err := p.Plan(dist, 3, 0)
func New(opts ...Option) *DP {
	p := &DP{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithNoise perturbs beliefs with seeded Gaussian noise before each plan.
//
// A fresh generator is seeded for every Plan call, so repeated calls with the
// same inputs return identical results.
//
// Parameters:
//   - stdDev: Noise standard deviation (>= 0)
//   - seed: Explicit seed for the random source
//
// Returns:
//   - Option: Configuration option
func WithNoise(stdDev float64, seed int64) Option {
	return func(p *DP) {
		p.noise = &noiseConfig{stdDev: stdDev, seed: seed}
	}
}

// Plan computes the optimal segment boundaries for a belief distribution.
//
// The algorithm:
//  1. Validate inputs and require 0 <= budget < n
//  2. Optionally perturb beliefs (noise mode)
//  3. Fill the DP table bottom-up over budgets 0..K
//  4. Backtrack from (K, n-1) to recover thresholds
//
// Parameters:
//   - dist: Ascending belief distribution
//   - budget: Maximum number of segment boundaries K
//   - queryCost: Cost subtracted per split (>= 0)
//
// Returns:
//   - types.PlanResult: Thresholds and value[K][n-1]
//   - error: ErrEmptyDistribution, ErrInvalidInput or ErrInvalidBudget
func (p *DP) Plan(dist types.BeliefDistribution, budget int, queryCost float64) (types.PlanResult, error) {
	if err := dist.Validate(0); err != nil {
		return types.PlanResult{}, err
	}
	n := dist.Len()
	if budget < 0 || budget >= n {
		return types.PlanResult{}, fmt.Errorf("%w: budget %d outside [0, %d]", types.ErrInvalidBudget, budget, n-1)
	}
	if math.IsNaN(queryCost) || math.IsInf(queryCost, 0) || queryCost < 0 {
		return types.PlanResult{}, fmt.Errorf("%w: query cost %v must be a finite value >= 0", types.ErrInvalidInput, queryCost)
	}

	beliefs := dist.Beliefs()
	if p.noise != nil {
		if p.noise.stdDev < 0 || math.IsNaN(p.noise.stdDev) {
			return types.PlanResult{}, fmt.Errorf("%w: noise standard deviation %v must be >= 0", types.ErrInvalidConfig, p.noise.stdDev)
		}
		beliefs = Perturb(beliefs, p.noise.stdDev, NoiseSource(p.noise.seed))
	}

	weighted := make([]float64, n)
	for i, pt := range dist {
		weighted[i] = pt.Probability * beliefs[i]
	}

	t := newTable(budget, n)
	t.fill(weighted, queryCost)

	return types.PlanResult{
		Thresholds:    t.backtrack(),
		ExpectedValue: t.terminal(),
		Budget:        budget,
		QueryCost:     queryCost,
		Beliefs:       beliefs,
	}, nil
}
