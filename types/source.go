package types

import "context"

// PopulationSource provides the receiver population for a policy search.
//
// Implementations can load populations from:
//   - Static configuration (source.NewStatic)
//   - Scenario files
//   - External services
type PopulationSource interface {
	// ListReceivers returns the current receiver population.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - []ReceiverType: Receiver types with weights
	//   - error: Discovery error
	ListReceivers(ctx context.Context) ([]ReceiverType, error)
}

// DistributionSource provides the belief distribution for the planner.
type DistributionSource interface {
	// Distribution returns an ascending belief distribution.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - BeliefDistribution: Belief/probability points
	//   - error: Discovery or generation error
	Distribution(ctx context.Context) (BeliefDistribution, error)
}
