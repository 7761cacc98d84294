package persuade

import (
	"github.com/arloliu/persuade/strategy"
	"github.com/arloliu/persuade/types"
)

// Re-export types from the types package.
//
// Internal packages depend on types rather than the root package, which keeps
// the import graph acyclic while users still write persuade.ReceiverType,
// persuade.Logger and so on.
type (
	WorldState         = types.WorldState
	StatePriors        = types.StatePriors
	Message            = types.Message
	MessageProbs       = types.MessageProbs
	SignalingPolicy    = types.SignalingPolicy
	ReceiverType       = types.ReceiverType
	BeliefPoint        = types.BeliefPoint
	BeliefDistribution = types.BeliefDistribution
	PolicyResult       = types.PolicyResult
	PlanResult         = types.PlanResult
	Disclosure         = strategy.Disclosure
)

// Re-export interfaces from the types package for convenience.
type (
	PolicyStrategy     = types.PolicyStrategy
	ThresholdPlanner   = types.ThresholdPlanner
	PopulationSource   = types.PopulationSource
	DistributionSource = types.DistributionSource
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks
)

// Re-export state and message constants.
const (
	State0   = types.State0
	State1   = types.State1
	Message0 = types.Message0
	Message1 = types.Message1
)

// NewBinaryPolicy returns the policy sending m1 with probability p0 in state 0
// and p1 in state 1.
func NewBinaryPolicy(p0, p1 float64) SignalingPolicy {
	return types.NewBinaryPolicy(p0, p1)
}
