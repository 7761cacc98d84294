package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/persuade/types"
)

func TestFixtures(t *testing.T) {
	require.NoError(t, types.ValidateReceivers(ModeratePopulation(), 1e-9))
	require.NoError(t, types.ValidateReceivers(PolarizedPopulation(), 1e-9))
	require.NoError(t, EvenDistribution().Validate(1e-12))
}

func TestRandomDistribution(t *testing.T) {
	dist := RandomDistribution(12, 5)

	require.Equal(t, 12, dist.Len())
	require.NoError(t, dist.Validate(1e-9))
	require.Equal(t, dist, RandomDistribution(12, 5))
	require.NotEqual(t, dist, RandomDistribution(12, 6))
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)

	require.NotPanics(t, func() {
		logger.Debug("debug", "k", 1)
		logger.Info("info")
		logger.Warn("warn", "k", "v")
		logger.Error("error")
	})
}
