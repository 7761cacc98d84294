package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBinaryPolicy(t *testing.T) {
	p := NewBinaryPolicy(0.25, 0.75)

	require.Equal(t, 0.75, p.Prob(Message0, State0))
	require.Equal(t, 0.25, p.Prob(Message0, State1))
	require.Equal(t, 0.25, p.Prob(Message1, State0))
	require.Equal(t, 0.75, p.Prob(Message1, State1))

	for _, s := range WorldStates {
		require.InDelta(t, 1.0, p.Prob(Message0, s)+p.Prob(Message1, s), 1e-12)
	}
}

func TestSignalingPolicy_Valid(t *testing.T) {
	t.Run("monotone policy is valid", func(t *testing.T) {
		require.True(t, NewBinaryPolicy(0.2, 1.0).Valid())
	})

	t.Run("uninformative policy is valid", func(t *testing.T) {
		require.True(t, NewBinaryPolicy(0.5, 0.5).Valid())
	})

	t.Run("inverted policy is invalid", func(t *testing.T) {
		require.False(t, NewBinaryPolicy(0.6, 0.4).Valid())
	})
}

func TestSignalingPolicy_String(t *testing.T) {
	p := NewBinaryPolicy(0.5, 1)
	require.Equal(t, "{m0: (0.500, 0.000), m1: (0.500, 1.000)}", p.String())
	require.Equal(t, "m1", Message1.String())
	require.Equal(t, "unknown", Message(3).String())
}
