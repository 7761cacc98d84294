// Package hooks provides default Hooks implementations.
package hooks

import (
	"context"

	"github.com/arloliu/persuade/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default used when no custom hooks are provided, so the engine
// never has to nil-check individual callbacks.
type NopHooks struct{}

var (
	_ func(context.Context, types.PolicyResult) error = (*NopHooks)(nil).OnPolicySelected
	_ func(context.Context, types.PlanResult) error   = (*NopHooks)(nil).OnPlanComputed
	_ func(context.Context, error) error              = (*NopHooks)(nil).OnError
)

// NewNop returns Hooks whose callbacks all do nothing.
func NewNop() types.Hooks {
	h := &NopHooks{}

	return types.Hooks{
		OnPolicySelected: h.OnPolicySelected,
		OnPlanComputed:   h.OnPlanComputed,
		OnError:          h.OnError,
	}
}

// Fill returns h with every nil callback replaced by a no-op.
func Fill(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnPolicySelected != nil {
		out.OnPolicySelected = h.OnPolicySelected
	}
	if h.OnPlanComputed != nil {
		out.OnPlanComputed = h.OnPlanComputed
	}
	if h.OnError != nil {
		out.OnError = h.OnError
	}

	return out
}

// OnPolicySelected is a no-op implementation.
func (h *NopHooks) OnPolicySelected(_ context.Context, _ types.PolicyResult) error {
	return nil
}

// OnPlanComputed is a no-op implementation.
func (h *NopHooks) OnPlanComputed(_ context.Context, _ types.PlanResult) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
