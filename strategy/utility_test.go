package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/persuade/types"
)

func TestExpectedUtility(t *testing.T) {
	priors := types.UniformPriors()

	t.Run("full disclosure persuades only in state one", func(t *testing.T) {
		receivers := []types.ReceiverType{{Belief: 0.3, Weight: 1}}

		u := ExpectedUtility(receivers, types.NewBinaryPolicy(0, 1), priors)

		require.InDelta(t, 0.5, u, 1e-12)
	})

	t.Run("no disclosure leaves optimists acting always", func(t *testing.T) {
		receivers := []types.ReceiverType{
			{Belief: 0.75, Weight: 0.5},
			{Belief: 0.25, Weight: 0.5},
		}

		u := ExpectedUtility(receivers, types.NewBinaryPolicy(0.5, 0.5), priors)

		require.InDelta(t, 0.5, u, 1e-12)
	})

	t.Run("zero weight contributes nothing", func(t *testing.T) {
		receivers := []types.ReceiverType{{Belief: 0.9, Weight: 0}}

		require.Equal(t, 0.0, ExpectedUtility(receivers, types.NewBinaryPolicy(0, 1), priors))
	})

	t.Run("skewed priors weight the states", func(t *testing.T) {
		receivers := []types.ReceiverType{{Belief: 0.3, Weight: 1}}
		skewed := types.StatePriors{State0: 0.25, State1: 0.75}

		u := ExpectedUtility(receivers, types.NewBinaryPolicy(0, 1), skewed)

		require.InDelta(t, 0.75, u, 1e-12)
	})
}

func TestGrid(t *testing.T) {
	require.Nil(t, Grid(0))
	require.Equal(t, []float64{0}, Grid(1))
	require.Equal(t, []float64{0, 0.5, 1}, Grid(3))

	points := Grid(11)
	require.Len(t, points, 11)
	require.Equal(t, 0.0, points[0])
	require.Equal(t, 1.0, points[10])
	for i := 1; i < len(points); i++ {
		require.Greater(t, points[i], points[i-1])
	}
}
