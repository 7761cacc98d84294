package persuade

import "github.com/arloliu/persuade/types"

// Sentinel errors returned by the Engine. They alias the types package so
// errors.Is matches regardless of which package the caller imports.
var (
	// ErrInvalidInput is returned for malformed populations or distributions.
	ErrInvalidInput = types.ErrInvalidInput

	// ErrNoReceivers is returned for an empty receiver population.
	ErrNoReceivers = types.ErrNoReceivers

	// ErrEmptyDistribution is returned for a distribution with no points.
	ErrEmptyDistribution = types.ErrEmptyDistribution

	// ErrInvalidBudget is returned when the segment budget is outside [0, n-1].
	ErrInvalidBudget = types.ErrInvalidBudget

	// ErrInfeasibleOptimization is returned when the disclosure LP fails.
	ErrInfeasibleOptimization = types.ErrInfeasibleOptimization

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrNoiseSeedRequired is returned when noise is enabled without a seed.
	ErrNoiseSeedRequired = types.ErrNoiseSeedRequired

	// ErrInvalidResolution is returned for a grid with fewer than two points.
	ErrInvalidResolution = types.ErrInvalidResolution
)
