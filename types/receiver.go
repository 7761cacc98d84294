package types

import (
	"fmt"
	"math"
)

// ReceiverType describes one receiver type in a population.
//
// A receiver holds a prior belief that the world is in State1 and carries a
// population weight. Values are immutable once constructed; engines only read them.
type ReceiverType struct {
	// Belief is the prior probability the receiver assigns to State1, in [0,1].
	Belief float64 `json:"belief" yaml:"belief"`

	// Weight is the share of the population holding this belief (>= 0).
	// Weights across a population should sum to 1.
	Weight float64 `json:"weight" yaml:"weight"`
}

// ValidateReceivers checks that a population is usable by a policy search.
//
// The population must be non-empty, every belief must lie in [0,1] and every
// weight must be non-negative. When tolerance > 0 the weights must also sum to
// 1 within tolerance; a non-positive tolerance skips the sum check.
//
// Parameters:
//   - receivers: Population to check
//   - tolerance: Allowed absolute deviation of the weight sum from 1
//
// Returns:
//   - error: ErrNoReceivers or a wrapped ErrInvalidInput, nil if valid
func ValidateReceivers(receivers []ReceiverType, tolerance float64) error {
	if len(receivers) == 0 {
		return ErrNoReceivers
	}

	total := 0.0
	for i, r := range receivers {
		if !inUnit(r.Belief) {
			return fmt.Errorf("%w: receiver %d belief %v outside [0,1]", ErrInvalidInput, i, r.Belief)
		}
		if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) || r.Weight < 0 {
			return fmt.Errorf("%w: receiver %d weight %v must be a finite value >= 0", ErrInvalidInput, i, r.Weight)
		}
		total += r.Weight
	}

	if tolerance > 0 && math.Abs(total-1) > tolerance {
		return fmt.Errorf("%w: receiver weights sum to %v, want 1 (tolerance %v)", ErrInvalidInput, total, tolerance)
	}

	return nil
}

// inUnit reports whether v is a number in [0,1].
func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
