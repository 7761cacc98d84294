package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("narrow errors match their class", func(t *testing.T) {
		require.ErrorIs(t, ErrNoReceivers, ErrInvalidInput)
		require.ErrorIs(t, ErrEmptyDistribution, ErrInvalidInput)
		require.ErrorIs(t, ErrNoiseSeedRequired, ErrInvalidConfig)
		require.ErrorIs(t, ErrInvalidResolution, ErrInvalidConfig)
	})

	t.Run("wrapped errors maintain identity", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: belief 1.5 at index 2", ErrInvalidInput)
		require.ErrorIs(t, wrapped, ErrInvalidInput)
		require.NotErrorIs(t, wrapped, ErrInvalidBudget)
	})

	t.Run("error classes are distinct", func(t *testing.T) {
		classes := []error{
			ErrInvalidInput,
			ErrInvalidBudget,
			ErrInfeasibleOptimization,
			ErrInvalidConfig,
		}

		for i, err1 := range classes {
			for j, err2 := range classes {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}
