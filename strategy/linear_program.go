package strategy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/arloliu/persuade/types"
)

// defaultLPTolerance is the numerical tolerance handed to the simplex solver.
const defaultLPTolerance = 1e-10

// Disclosure is a per-belief probability of sending message 1.
type Disclosure struct {
	// Probabilities[i] is P(m1) for receivers at distribution point i.
	Probabilities []float64 `json:"probabilities"`

	// Objective is Σ probability_i * Probabilities[i].
	Objective float64 `json:"objective"`
}

// LinearProgram computes an optimal two-message disclosure vector.
//
// It maximizes Σ probability_i * x_i subject to the prefix constraints
// x_0 + ... + x_i <= 1 for every i and 0 <= x_i <= 1.
type LinearProgram struct {
	tolerance float64
}

// LinearProgramOption configures a LinearProgram.
type LinearProgramOption func(*LinearProgram)

// NewLinearProgram creates a linear-program disclosure solver.
//
// Parameters:
//   - opts: Optional configuration (WithTolerance)
//
// Returns:
//   - *LinearProgram: Initialized solver
func NewLinearProgram(opts ...LinearProgramOption) *LinearProgram {
	s := &LinearProgram{tolerance: defaultLPTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithTolerance sets the simplex numerical tolerance.
func WithTolerance(tol float64) LinearProgramOption {
	return func(s *LinearProgram) {
		s.tolerance = tol
	}
}

// Solve computes the disclosure vector for a belief distribution.
//
// The problem is rewritten in standard form (equalities, non-negative
// variables) with one slack per prefix constraint and one per upper bound:
//
//	minimize   -p·x
//	subject to L x + s = 1,  x + t = 1,  x, s, t >= 0
//
// where L is the lower-triangular matrix of ones.
//
// Parameters:
//   - dist: Belief distribution; only probabilities enter the objective
//
// Returns:
//   - Disclosure: Optimal x and objective value
//   - error: ErrEmptyDistribution, ErrInvalidInput or ErrInfeasibleOptimization
func (s *LinearProgram) Solve(dist types.BeliefDistribution) (Disclosure, error) {
	if err := dist.Validate(0); err != nil {
		return Disclosure{}, err
	}

	n := dist.Len()
	rows, cols := 2*n, 3*n

	c := make([]float64, cols)
	for i, p := range dist {
		c[i] = -p.Probability
	}

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	for i := range n {
		for j := 0; j <= i; j++ {
			a.Set(i, j, 1)
		}
		a.Set(i, n+i, 1)
		b[i] = 1

		a.Set(n+i, i, 1)
		a.Set(n+i, 2*n+i, 1)
		b[n+i] = 1
	}

	optF, optX, err := lp.Simplex(c, a, b, s.tolerance, nil)
	if err != nil {
		return Disclosure{}, wrapSolverError(err)
	}

	// Adding zero folds the solver's -0 results into +0.
	x := make([]float64, n)
	for i, v := range optX[:n] {
		x[i] = v + 0
	}

	return Disclosure{Probabilities: x, Objective: -optF + 0}, nil
}

// wrapSolverError classifies any solver failure as infeasible optimization.
func wrapSolverError(err error) error {
	return fmt.Errorf("%w: %w", types.ErrInfeasibleOptimization, err)
}
