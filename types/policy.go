package types

import "fmt"

// Message identifies one of the two signals the sender can emit.
type Message int

const (
	// Message0 is the "unfavorable" signal.
	Message0 Message = iota

	// Message1 is the signal meant to be read as evidence for State1.
	Message1
)

// Messages lists both messages in enumeration order.
var Messages = [2]Message{Message0, Message1}

// String returns the string representation of the message.
func (m Message) String() string {
	switch m {
	case Message0:
		return "m0"
	case Message1:
		return "m1"
	default:
		return "unknown"
	}
}

// MessageProbs holds the probability of one message under each world state.
type MessageProbs struct {
	// GivenState0 is P(message | state=0).
	GivenState0 float64 `json:"givenState0" yaml:"givenState0"`

	// GivenState1 is P(message | state=1).
	GivenState1 float64 `json:"givenState1" yaml:"givenState1"`
}

// Given returns the message probability under state s.
func (mp MessageProbs) Given(s WorldState) float64 {
	if s == State1 {
		return mp.GivenState1
	}

	return mp.GivenState0
}

// SignalingPolicy is a conditional distribution over two messages given the state.
//
// For each state the two message probabilities sum to 1. A policy built with
// NewBinaryPolicy satisfies this by construction.
type SignalingPolicy struct {
	M0 MessageProbs `json:"m0" yaml:"m0"`
	M1 MessageProbs `json:"m1" yaml:"m1"`
}

// NewBinaryPolicy builds the policy that sends Message1 with probability p0 in
// State0 and p1 in State1, and Message0 otherwise.
//
// Parameters:
//   - p0: P(Message1 | State0)
//   - p1: P(Message1 | State1)
//
// Returns:
//   - SignalingPolicy: {m0: (1-p0, 1-p1), m1: (p0, p1)}
func NewBinaryPolicy(p0, p1 float64) SignalingPolicy {
	return SignalingPolicy{
		M0: MessageProbs{GivenState0: 1 - p0, GivenState1: 1 - p1},
		M1: MessageProbs{GivenState0: p0, GivenState1: p1},
	}
}

// Probs returns the state-conditional probabilities of message m.
func (p SignalingPolicy) Probs(m Message) MessageProbs {
	if m == Message1 {
		return p.M1
	}

	return p.M0
}

// Prob returns P(m | s).
func (p SignalingPolicy) Prob(m Message, s WorldState) float64 {
	return p.Probs(m).Given(s)
}

// Valid reports whether the policy satisfies the monotone likelihood-ratio
// constraint P(m1 | state1) >= P(m1 | state0).
func (p SignalingPolicy) Valid() bool {
	return p.M1.GivenState1 >= p.M1.GivenState0
}

// String renders the policy in the {m0: (..), m1: (..)} form used by reports.
func (p SignalingPolicy) String() string {
	return fmt.Sprintf("{m0: (%.3f, %.3f), m1: (%.3f, %.3f)}",
		p.M0.GivenState0, p.M0.GivenState1, p.M1.GivenState0, p.M1.GivenState1)
}
