package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/persuade/types"
)

func TestStatic_ListReceivers(t *testing.T) {
	t.Run("returns all receivers", func(t *testing.T) {
		receivers := []types.ReceiverType{
			{Belief: 0.2, Weight: 0.5},
			{Belief: 0.6, Weight: 0.5},
		}
		src := NewStatic(receivers)

		result, err := src.ListReceivers(context.Background())

		require.NoError(t, err)
		require.Equal(t, receivers, result)
	})

	t.Run("returns a copy", func(t *testing.T) {
		src := NewStatic([]types.ReceiverType{{Belief: 0.2, Weight: 1}})

		result, err := src.ListReceivers(context.Background())
		require.NoError(t, err)
		result[0].Belief = 0.9

		again, err := src.ListReceivers(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0.2, again[0].Belief)
	})

	t.Run("is not affected by caller mutation", func(t *testing.T) {
		receivers := []types.ReceiverType{{Belief: 0.2, Weight: 1}}
		src := NewStatic(receivers)
		receivers[0].Weight = 0

		result, err := src.ListReceivers(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1.0, result[0].Weight)
	})

	t.Run("update replaces the population", func(t *testing.T) {
		src := NewStatic(nil)
		src.Update([]types.ReceiverType{{Belief: 0.4, Weight: 1}})

		result, err := src.ListReceivers(context.Background())
		require.NoError(t, err)
		require.Len(t, result, 1)
	})
}

func TestStaticDistribution(t *testing.T) {
	dist := types.BeliefDistribution{
		{Belief: 0.1, Probability: 0.5},
		{Belief: 0.9, Probability: 0.5},
	}
	src := NewStaticDistribution(dist)

	result, err := src.Distribution(context.Background())
	require.NoError(t, err)
	require.Equal(t, dist, result)

	result[0].Belief = 0.3
	again, err := src.Distribution(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0.1, again[0].Belief)

	src.Update(dist[:1])
	again, err = src.Distribution(context.Background())
	require.NoError(t, err)
	require.Len(t, again, 1)
}
