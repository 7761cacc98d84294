package strategy

import (
	"math"
	"sync"

	"github.com/arloliu/persuade/types"
)

// DefaultResolution is the number of grid points over [0,1] (step 0.1).
const DefaultResolution = 11

// GridSearch implements exhaustive two-message policy search on a fixed grid.
type GridSearch struct {
	resolution int
	workers    int
	priors     types.StatePriors
}

var _ types.PolicyStrategy = (*GridSearch)(nil)

// GridSearchOption configures a GridSearch strategy.
type GridSearchOption func(*GridSearch)

// NewGridSearch creates a new grid search strategy.
//
// The strategy enumerates p0 = P(m1|state0) and p1 = P(m1|state1) over
// equally spaced points in [0,1], skips every pair with p1 < p0, and keeps the
// policy with the highest expected sender utility.
//
// Parameters:
//   - opts: Optional configuration (WithResolution, WithWorkers, WithPriors)
//
// Returns:
//   - *GridSearch: Initialized grid search strategy
//
// Example:
//
//	search := strategy.NewGridSearch(
//	    strategy.WithResolution(21),
//	)
//	res, err := search.Search(receivers)
func NewGridSearch(opts ...GridSearchOption) *GridSearch {
	g := &GridSearch{
		resolution: DefaultResolution,
		workers:    1,
		priors:     types.UniformPriors(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithResolution sets the number of grid points per axis.
//
// Parameters:
//   - points: Grid points over [0,1], at least 2 (default: 11)
//
// Returns:
//   - GridSearchOption: Configuration option
func WithResolution(points int) GridSearchOption {
	return func(g *GridSearch) {
		g.resolution = points
	}
}

// WithWorkers sets how many goroutines evaluate grid rows.
//
// Values <= 1 evaluate sequentially. Selection always scans in enumeration
// order, so the result does not depend on the worker count.
//
// Parameters:
//   - workers: Number of concurrent row evaluators
//
// Returns:
//   - GridSearchOption: Configuration option
func WithWorkers(workers int) GridSearchOption {
	return func(g *GridSearch) {
		g.workers = workers
	}
}

// WithPriors overrides the uniform prior over world states.
func WithPriors(priors types.StatePriors) GridSearchOption {
	return func(g *GridSearch) {
		g.priors = priors
	}
}

// Resolution returns the configured grid resolution.
func (g *GridSearch) Resolution() int {
	return g.resolution
}

// Grid returns n equally spaced points covering [0,1].
//
// Points are computed as i*(1/(n-1)) with the last point pinned to exactly 1.
func Grid(n int) []float64 {
	if n <= 0 {
		return nil
	}
	points := make([]float64, n)
	if n == 1 {
		return points
	}

	step := 1.0 / float64(n-1)
	for i := range n {
		points[i] = float64(i) * step
	}
	points[n-1] = 1

	return points
}

// Search finds the valid policy maximizing expected sender utility.
//
// The algorithm:
//  1. Enumerate p0 then p1 ascending over the grid
//  2. Skip pairs with p1 < p0 (monotone likelihood-ratio filter)
//  3. Evaluate {m0: (1-p0, 1-p1), m1: (p0, p1)} with ExpectedUtility
//  4. Keep the first policy reaching the maximum
//
// Parameters:
//   - receivers: Population of receiver types
//
// Returns:
//   - types.PolicyResult: Best utility and policy
//   - error: ErrNoReceivers, ErrInvalidInput or ErrInvalidResolution
func (g *GridSearch) Search(receivers []types.ReceiverType) (types.PolicyResult, error) {
	if len(receivers) == 0 {
		return types.PolicyResult{}, ErrNoReceivers
	}
	if err := types.ValidateReceivers(receivers, 0); err != nil {
		return types.PolicyResult{}, err
	}
	if g.resolution < 2 {
		return types.PolicyResult{}, types.ErrInvalidResolution
	}

	points := Grid(g.resolution)
	rows := g.evaluate(receivers, points)

	result := types.PolicyResult{Utility: math.Inf(-1)}
	found := false
	for i, p0 := range points {
		for j, p1 := range points {
			if p1 < p0 {
				result.Skipped++
				continue
			}
			result.Candidates++

			if u := rows[i][j]; !found || u > result.Utility {
				found = true
				result.Utility = u
				result.Policy = types.NewBinaryPolicy(p0, p1)
			}
		}
	}

	return result, nil
}

// evaluate fills the utility of every valid grid cell, one row per p0.
func (g *GridSearch) evaluate(receivers []types.ReceiverType, points []float64) [][]float64 {
	rows := make([][]float64, len(points))

	if g.workers <= 1 {
		for i := range points {
			rows[i] = g.evaluateRow(receivers, points, i)
		}

		return rows
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for range min(g.workers, len(points)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				rows[i] = g.evaluateRow(receivers, points, i)
			}
		}()
	}
	for i := range points {
		next <- i
	}
	close(next)
	wg.Wait()

	return rows
}

// evaluateRow computes utilities for fixed p0 = points[i]; invalid cells stay 0.
func (g *GridSearch) evaluateRow(receivers []types.ReceiverType, points []float64, i int) []float64 {
	p0 := points[i]
	row := make([]float64, len(points))
	for j, p1 := range points {
		if p1 < p0 {
			continue
		}
		row[j] = ExpectedUtility(receivers, types.NewBinaryPolicy(p0, p1), g.priors)
	}

	return row
}
