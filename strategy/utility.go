package strategy

import (
	"github.com/arloliu/persuade/oracle"
	"github.com/arloliu/persuade/types"
)

// ExpectedUtility returns the sender's expected utility of a policy.
//
// The sender earns 1 whenever a receiver takes action 1:
//
//	Σ_state Σ_receiver weight * prior(state) * Σ_message P(message|state) * action(receiver, message)
//
// Aggregation runs states, then receivers, then messages, each in ascending
// order, so results are reproducible bit for bit.
//
// Parameters:
//   - receivers: Population of receiver types
//   - policy: Policy to evaluate
//   - priors: Prior over world states
//
// Returns:
//   - float64: Expected sender utility
func ExpectedUtility(receivers []types.ReceiverType, policy types.SignalingPolicy, priors types.StatePriors) float64 {
	total := 0.0
	for _, state := range types.WorldStates {
		statePrior := priors.Of(state)
		for _, r := range receivers {
			receiverUtility := 0.0
			for _, msg := range types.Messages {
				if oracle.Decide(r.Belief, msg, policy) == oracle.Act {
					receiverUtility += policy.Prob(msg, state)
				}
			}
			total += receiverUtility * r.Weight * statePrior
		}
	}

	return total
}
