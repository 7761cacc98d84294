package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateReceivers(t *testing.T) {
	t.Run("accepts a normalized population", func(t *testing.T) {
		receivers := []ReceiverType{
			{Belief: 0.7, Weight: 0.3},
			{Belief: 0.4, Weight: 0.4},
			{Belief: 0.2, Weight: 0.3},
		}

		require.NoError(t, ValidateReceivers(receivers, 1e-6))
	})

	t.Run("rejects an empty population", func(t *testing.T) {
		err := ValidateReceivers(nil, 1e-6)

		require.ErrorIs(t, err, ErrNoReceivers)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects beliefs outside the unit interval", func(t *testing.T) {
		err := ValidateReceivers([]ReceiverType{{Belief: 1.2, Weight: 1}}, 1e-6)
		require.ErrorIs(t, err, ErrInvalidInput)

		err = ValidateReceivers([]ReceiverType{{Belief: math.NaN(), Weight: 1}}, 1e-6)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects negative weights", func(t *testing.T) {
		err := ValidateReceivers([]ReceiverType{{Belief: 0.5, Weight: -0.1}, {Belief: 0.5, Weight: 1.1}}, 0)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects weights that do not sum to one", func(t *testing.T) {
		err := ValidateReceivers([]ReceiverType{{Belief: 0.5, Weight: 0.5}}, 1e-6)
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Contains(t, err.Error(), "sum")
	})

	t.Run("zero tolerance skips the sum check", func(t *testing.T) {
		require.NoError(t, ValidateReceivers([]ReceiverType{{Belief: 0.5, Weight: 0.5}}, 0))
	})
}
