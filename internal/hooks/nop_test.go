package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/persuade/types"
)

func TestNewNop(t *testing.T) {
	h := NewNop()
	ctx := context.Background()

	require.NoError(t, h.OnPolicySelected(ctx, types.PolicyResult{Utility: 0.6}))
	require.NoError(t, h.OnPlanComputed(ctx, types.PlanResult{ExpectedValue: 0.5}))
	require.NoError(t, h.OnError(ctx, context.Canceled))
}

func TestFill(t *testing.T) {
	t.Run("nil hooks become no-ops", func(t *testing.T) {
		h := Fill(nil)

		require.NotNil(t, h.OnPolicySelected)
		require.NotNil(t, h.OnPlanComputed)
		require.NotNil(t, h.OnError)
	})

	t.Run("keeps provided callbacks", func(t *testing.T) {
		errBoom := errors.New("boom")
		var planned bool
		h := Fill(&types.Hooks{
			OnPlanComputed: func(context.Context, types.PlanResult) error {
				planned = true
				return errBoom
			},
		})

		require.ErrorIs(t, h.OnPlanComputed(context.Background(), types.PlanResult{}), errBoom)
		require.True(t, planned)
		require.NoError(t, h.OnPolicySelected(context.Background(), types.PolicyResult{}))
		require.NoError(t, h.OnError(context.Background(), errBoom))
	})
}
