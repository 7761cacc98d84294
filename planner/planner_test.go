package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	persuadetest "github.com/arloliu/persuade/testing"
	"github.com/arloliu/persuade/types"
)

var referenceDistribution = persuadetest.EvenDistribution

func TestDP_Plan(t *testing.T) {
	t.Run("reference distribution with two queries", func(t *testing.T) {
		res, err := New().Plan(referenceDistribution(), 2, 0)

		require.NoError(t, err)
		// value[1][3] splits after index 0: 0.025 + (0.1 + 0.15 + 0.225).
		// value[2][3] only ties it, so the carried-over branch wins.
		require.InDelta(t, 0.5, res.ExpectedValue, 1e-12)
		require.Equal(t, []int{0}, res.Thresholds)
		require.Equal(t, 2, res.Budget)
		require.Equal(t, []float64{0.1}, res.ThresholdBeliefs())
	})

	t.Run("zero budget is the unsplit baseline", func(t *testing.T) {
		res, err := New().Plan(referenceDistribution(), 0, 0)

		require.NoError(t, err)
		require.Empty(t, res.Thresholds)
		require.InDelta(t, 0.225, res.ExpectedValue, 1e-12)
	})

	t.Run("query cost is subtracted per split", func(t *testing.T) {
		res, err := New().Plan(referenceDistribution(), 1, 0.2)

		require.NoError(t, err)
		require.InDelta(t, 0.3, res.ExpectedValue, 1e-12)
		require.Equal(t, []int{0}, res.Thresholds)
		require.Equal(t, 0.2, res.QueryCost)
	})

	t.Run("prohibitive cost matches the zero budget", func(t *testing.T) {
		base, err := New().Plan(referenceDistribution(), 0, 0)
		require.NoError(t, err)

		for budget := 1; budget < 4; budget++ {
			res, err := New().Plan(referenceDistribution(), budget, 10)

			require.NoError(t, err)
			require.Empty(t, res.Thresholds)
			require.Equal(t, base.ExpectedValue, res.ExpectedValue)
		}
	})

	t.Run("single point distribution", func(t *testing.T) {
		res, err := New().Plan(types.BeliefDistribution{{Belief: 0.5, Probability: 1}}, 0, 0)

		require.NoError(t, err)
		require.Empty(t, res.Thresholds)
		require.Equal(t, 0.5, res.ExpectedValue)
	})

	t.Run("rejects budgets outside the valid range", func(t *testing.T) {
		_, err := New().Plan(referenceDistribution(), -1, 0)
		require.ErrorIs(t, err, types.ErrInvalidBudget)

		_, err = New().Plan(referenceDistribution(), 4, 0)
		require.ErrorIs(t, err, types.ErrInvalidBudget)
	})

	t.Run("rejects an empty distribution", func(t *testing.T) {
		_, err := New().Plan(nil, 0, 0)

		require.ErrorIs(t, err, types.ErrEmptyDistribution)
	})

	t.Run("rejects a negative query cost", func(t *testing.T) {
		_, err := New().Plan(referenceDistribution(), 1, -0.1)

		require.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("does not mutate the distribution", func(t *testing.T) {
		dist := referenceDistribution()

		_, err := New(WithNoise(0.5, 7)).Plan(dist, 2, 0)

		require.NoError(t, err)
		require.Equal(t, referenceDistribution(), dist)
	})
}

func TestDP_Properties(t *testing.T) {
	for trial := range 25 {
		dist := persuadetest.RandomDistribution(3+trial%8, int64(trial))
		cost := []float64{0, 0.01, 0.1}[trial%3]

		prev := -1.0
		for budget := range dist.Len() {
			res, err := New().Plan(dist, budget, cost)
			require.NoError(t, err)

			require.LessOrEqual(t, len(res.Thresholds), budget, "threshold count bound")
			require.IsIncreasing(t, append([]int{-1}, res.Thresholds...))
			for _, idx := range res.Thresholds {
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, dist.Len())
			}
			require.GreaterOrEqual(t, res.ExpectedValue, prev, "value monotone in budget")
			prev = res.ExpectedValue
		}
	}
}

func TestDP_Noise(t *testing.T) {
	t.Run("same seed gives identical plans", func(t *testing.T) {
		first, err := New(WithNoise(0.02, 42)).Plan(referenceDistribution(), 2, 0)
		require.NoError(t, err)
		second, err := New(WithNoise(0.02, 42)).Plan(referenceDistribution(), 2, 0)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("planner reuse stays reproducible", func(t *testing.T) {
		p := New(WithNoise(0.05, 3))

		first, err := p.Plan(referenceDistribution(), 1, 0)
		require.NoError(t, err)
		second, err := p.Plan(referenceDistribution(), 1, 0)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("perturbs the beliefs the plan ran on", func(t *testing.T) {
		res, err := New(WithNoise(0.05, 1)).Plan(referenceDistribution(), 1, 0)

		require.NoError(t, err)
		require.NotEqual(t, referenceDistribution().Beliefs(), res.Beliefs)
		for _, b := range res.Beliefs {
			require.GreaterOrEqual(t, b, 0.0)
			require.LessOrEqual(t, b, 1.0)
		}
	})

	t.Run("zero deviation leaves beliefs unchanged", func(t *testing.T) {
		plain, err := New().Plan(referenceDistribution(), 2, 0)
		require.NoError(t, err)
		noisy, err := New(WithNoise(0, 9)).Plan(referenceDistribution(), 2, 0)
		require.NoError(t, err)

		require.Equal(t, plain, noisy)
	})

	t.Run("rejects a negative deviation", func(t *testing.T) {
		_, err := New(WithNoise(-1, 1)).Plan(referenceDistribution(), 1, 0)

		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}
