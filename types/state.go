package types

// WorldState is the hidden binary state the sender observes and the receiver
// tries to infer.
type WorldState int

const (
	// State0 is the state in which the receiver would rather not act.
	State0 WorldState = iota

	// State1 is the state in which acting is warranted.
	State1
)

// WorldStates lists both states in enumeration order.
var WorldStates = [2]WorldState{State0, State1}

// String returns the string representation of the state.
func (s WorldState) String() string {
	switch s {
	case State0:
		return "state0"
	case State1:
		return "state1"
	default:
		return "unknown"
	}
}

// StatePriors is the common prior over the world state, external to any policy.
type StatePriors struct {
	State0 float64 `json:"state0" yaml:"state0"`
	State1 float64 `json:"state1" yaml:"state1"`
}

// UniformPriors returns the fixed 50/50 prior used throughout the model.
func UniformPriors() StatePriors {
	return StatePriors{State0: 0.5, State1: 0.5}
}

// Of returns the prior probability of the given state (0 for unknown states).
func (p StatePriors) Of(s WorldState) float64 {
	switch s {
	case State0:
		return p.State0
	case State1:
		return p.State1
	default:
		return 0
	}
}
