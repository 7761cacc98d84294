package oracle

import "github.com/arloliu/persuade/types"

// Action is the receiver's binary response. The sender always prefers Act.
type Action int

const (
	// Abstain is action 0.
	Abstain Action = 0

	// Act is action 1, the sender-preferred action.
	Act Action = 1
)

// String returns "abstain" or "act".
func (a Action) String() string {
	if a == Act {
		return "act"
	}

	return "abstain"
}

// MarshalText encodes the action by name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// actionThreshold is the posterior at or above which a receiver acts.
const actionThreshold = 0.5

// Posterior returns the receiver's updated belief in State1 after a message.
//
// Parameters:
//   - prior: Prior belief in State1, in [0,1]
//   - pGivenState0: P(message | State0)
//   - pGivenState1: P(message | State1)
//
// Returns:
//   - float64: Posterior belief, or prior when the message has zero total mass
func Posterior(prior, pGivenState0, pGivenState1 float64) float64 {
	numerator := prior * pGivenState1
	denominator := numerator + (1-prior)*pGivenState0
	if denominator == 0 {
		return prior
	}

	return numerator / denominator
}

// Decide returns Act iff the posterior after the message is at least 0.5.
func Decide(prior float64, msg types.Message, policy types.SignalingPolicy) Action {
	probs := policy.Probs(msg)
	if Posterior(prior, probs.GivenState0, probs.GivenState1) >= actionThreshold {
		return Act
	}

	return Abstain
}

// Oracle answers posterior and action queries for one receiver type.
type Oracle struct {
	receiver types.ReceiverType
}

// New creates an oracle bound to a receiver type.
func New(receiver types.ReceiverType) Oracle {
	return Oracle{receiver: receiver}
}

// Receiver returns the receiver type the oracle answers for.
func (o Oracle) Receiver() types.ReceiverType {
	return o.receiver
}

// Posterior returns the receiver's posterior after msg under policy.
func (o Oracle) Posterior(msg types.Message, policy types.SignalingPolicy) float64 {
	probs := policy.Probs(msg)

	return Posterior(o.receiver.Belief, probs.GivenState0, probs.GivenState1)
}

// Query returns the receiver's action after msg under policy.
func (o Oracle) Query(msg types.Message, policy types.SignalingPolicy) Action {
	return Decide(o.receiver.Belief, msg, policy)
}

// Response is a receiver's action to each message under one policy.
type Response struct {
	Receiver types.ReceiverType `json:"receiver"`
	OnM0     Action             `json:"onM0"`
	OnM1     Action             `json:"onM1"`
}

// Responses reports how every receiver reacts to both messages.
//
// Parameters:
//   - receivers: Population to query
//   - policy: Policy the messages are drawn from
//
// Returns:
//   - []Response: One entry per receiver, in input order
func Responses(receivers []types.ReceiverType, policy types.SignalingPolicy) []Response {
	out := make([]Response, len(receivers))
	for i, r := range receivers {
		o := New(r)
		out[i] = Response{
			Receiver: r,
			OnM0:     o.Query(types.Message0, policy),
			OnM1:     o.Query(types.Message1, policy),
		}
	}

	return out
}
