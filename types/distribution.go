package types

import (
	"fmt"
	"math"
)

// BeliefPoint is one entry of a belief distribution.
type BeliefPoint struct {
	// Belief is the receiver belief in State1 at this point, in [0,1].
	Belief float64 `json:"belief" yaml:"belief"`

	// Probability is the mass of receivers holding Belief (>= 0).
	Probability float64 `json:"probability" yaml:"probability"`
}

// BeliefDistribution is an ordered sequence of belief points, ascending by belief.
//
// It represents either a discretized continuum of receiver types or a
// histogram over beliefs. Probabilities should sum to 1.
type BeliefDistribution []BeliefPoint

// NewBeliefDistribution zips parallel belief and probability slices.
//
// Parameters:
//   - beliefs: Belief values, ascending
//   - probabilities: Mass for each belief
//
// Returns:
//   - BeliefDistribution: The zipped distribution
//   - error: ErrInvalidInput if the slices differ in length
func NewBeliefDistribution(beliefs, probabilities []float64) (BeliefDistribution, error) {
	if len(beliefs) != len(probabilities) {
		return nil, fmt.Errorf("%w: %d beliefs but %d probabilities", ErrInvalidInput, len(beliefs), len(probabilities))
	}

	dist := make(BeliefDistribution, len(beliefs))
	for i := range beliefs {
		dist[i] = BeliefPoint{Belief: beliefs[i], Probability: probabilities[i]}
	}

	return dist, nil
}

// Len returns the number of points.
func (d BeliefDistribution) Len() int {
	return len(d)
}

// Beliefs returns a copy of the belief column.
func (d BeliefDistribution) Beliefs() []float64 {
	out := make([]float64, len(d))
	for i, p := range d {
		out[i] = p.Belief
	}

	return out
}

// Probabilities returns a copy of the probability column.
func (d BeliefDistribution) Probabilities() []float64 {
	out := make([]float64, len(d))
	for i, p := range d {
		out[i] = p.Probability
	}

	return out
}

// Validate checks the distribution invariants.
//
// Rules:
//   - At least one point
//   - Beliefs and probabilities in [0,1]
//   - Beliefs non-decreasing
//   - Probabilities sum to 1 within tolerance (skipped when tolerance <= 0)
//
// Returns:
//   - error: ErrEmptyDistribution or a wrapped ErrInvalidInput, nil if valid
func (d BeliefDistribution) Validate(tolerance float64) error {
	if len(d) == 0 {
		return ErrEmptyDistribution
	}

	total := 0.0
	for i, p := range d {
		if !inUnit(p.Belief) {
			return fmt.Errorf("%w: point %d belief %v outside [0,1]", ErrInvalidInput, i, p.Belief)
		}
		if !inUnit(p.Probability) {
			return fmt.Errorf("%w: point %d probability %v outside [0,1]", ErrInvalidInput, i, p.Probability)
		}
		if i > 0 && p.Belief < d[i-1].Belief {
			return fmt.Errorf("%w: beliefs not ascending at index %d (%v < %v)", ErrInvalidInput, i, p.Belief, d[i-1].Belief)
		}
		total += p.Probability
	}

	if tolerance > 0 && math.Abs(total-1) > tolerance {
		return fmt.Errorf("%w: probabilities sum to %v, want 1 (tolerance %v)", ErrInvalidInput, total, tolerance)
	}

	return nil
}
