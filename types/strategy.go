package types

// PolicyStrategy selects a signaling policy for a receiver population.
//
// Strategies implement different search methods:
//   - GridSearch: Exhaustive search over a discretized (p0, p1) grid
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Be deterministic (same input → same output)
//   - Never return a policy violating the monotone likelihood-ratio constraint
//   - Report an empty population as ErrNoReceivers instead of returning a utility
//   - Not mutate their inputs
type PolicyStrategy interface {
	// Search finds the policy maximizing expected sender utility.
	//
	// Parameters:
	//   - receivers: Population of receiver types
	//
	// Returns:
	//   - PolicyResult: Best utility and policy, with enumeration counters
	//   - error: ErrNoReceivers or ErrInvalidInput for unusable populations
	Search(receivers []ReceiverType) (PolicyResult, error)
}

// ThresholdPlanner partitions a belief distribution into at most K segments.
//
// Planner implementations should:
//   - Be deterministic given their inputs and any explicit seed
//   - Return at most budget thresholds, ascending
//   - Report budgets outside [0, n-1] as ErrInvalidBudget
type ThresholdPlanner interface {
	// Plan computes the optimal segment boundaries.
	//
	// Parameters:
	//   - dist: Ascending belief distribution
	//   - budget: Maximum number of segment boundaries K
	//   - queryCost: Cost subtracted per split (>= 0)
	//
	// Returns:
	//   - PlanResult: Thresholds and expected value
	//   - error: ErrInvalidBudget, ErrEmptyDistribution or ErrInvalidInput
	Plan(dist BeliefDistribution, budget int, queryCost float64) (PlanResult, error)
}
