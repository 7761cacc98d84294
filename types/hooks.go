package types

import "context"

// Hooks defines callbacks for engine result events.
//
// All hooks are optional. They run synchronously on the caller's goroutine
// after a result has been computed, which makes them the natural place to
// forward results to reporting or plotting collaborators.
//
// Hook execution behavior:
//   - Hook errors are logged and forwarded to OnError
//   - Hook errors never change the result returned to the caller
//
// Example:
//
//	hooks := &persuade.Hooks{
//	    OnPolicySelected: func(ctx context.Context, res persuade.PolicyResult) error {
//	        return report.WritePolicy(os.Stdout, res)
//	    },
//	}
type Hooks struct {
	// OnPolicySelected is called after a policy search succeeds.
	OnPolicySelected func(ctx context.Context, result PolicyResult) error

	// OnPlanComputed is called after each successful threshold plan.
	OnPlanComputed func(ctx context.Context, result PlanResult) error

	// OnError is called when an engine call or another hook fails.
	OnError func(ctx context.Context, err error) error
}
