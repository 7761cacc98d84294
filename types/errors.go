package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the persuade library.
//
// These errors provide type-safe error checking using errors.Is().
// Components attach context by wrapping them with fmt.Errorf("%w: ...", ErrX, ...).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by failure class (input, budget, optimization, configuration)
//   - Narrower errors wrap their class so errors.Is matches both

// Input errors - malformed populations and distributions.
var (
	// ErrInvalidInput is returned for malformed receiver populations or belief
	// distributions (values outside [0,1], negative weights, sums away from 1).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoReceivers is returned when a policy search is asked to maximize over
	// an empty population.
	ErrNoReceivers = fmt.Errorf("%w: no receivers", ErrInvalidInput)

	// ErrEmptyDistribution is returned when the planner receives no belief points.
	ErrEmptyDistribution = fmt.Errorf("%w: empty belief distribution", ErrInvalidInput)
)

// Planner errors.
var (
	// ErrInvalidBudget is returned when the segment budget K is outside [0, n-1].
	ErrInvalidBudget = errors.New("invalid query budget")
)

// Optimization errors.
var (
	// ErrInfeasibleOptimization is returned when an underlying linear solve
	// reports infeasibility or otherwise fails to produce an optimum.
	ErrInfeasibleOptimization = errors.New("infeasible optimization")
)

// Configuration errors - surfaced before any computation begins.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoiseSeedRequired is returned when belief noise is enabled without an
	// explicit seed.
	ErrNoiseSeedRequired = fmt.Errorf("%w: noise requires an explicit seed", ErrInvalidConfig)

	// ErrInvalidResolution is returned when the policy grid has fewer than two points.
	ErrInvalidResolution = fmt.Errorf("%w: grid resolution must be at least 2", ErrInvalidConfig)
)
