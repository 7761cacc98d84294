package persuade

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/arloliu/persuade/internal/hash"
	"github.com/arloliu/persuade/internal/hooks"
	"github.com/arloliu/persuade/internal/logger"
	"github.com/arloliu/persuade/internal/memo"
	"github.com/arloliu/persuade/internal/metrics"
	"github.com/arloliu/persuade/planner"
	"github.com/arloliu/persuade/strategy"
	"github.com/arloliu/persuade/types"
)

// Cache kinds, also used as metric labels.
const (
	kindPolicy     = "policy"
	kindPlan       = "plan"
	kindDisclosure = "disclosure"
)

// Engine runs policy searches and threshold plans.
//
// An Engine is immutable after construction and safe for concurrent use.
// Every call is a pure computation over its inputs; the only shared state is
// the optional result cache.
type Engine struct {
	cfg        Config
	strategy   PolicyStrategy
	planner    ThresholdPlanner
	disclosure *strategy.LinearProgram
	logger     Logger
	metrics    MetricsCollector
	hooks      Hooks

	policies    *memo.Cache[PolicyResult]
	plans       *memo.Cache[PlanResult]
	disclosures *memo.Cache[Disclosure]
}

// NewEngine creates an Engine.
//
// A nil cfg uses DefaultConfig(). The config is copied, defaulted and
// validated; configuration errors are returned before any work is done.
//
// Parameters:
//   - cfg: Engine configuration (may be nil)
//   - opts: Optional dependencies (WithStrategy, WithPlanner, WithLogger, WithMetrics, WithHooks)
//
// Returns:
//   - *Engine: Ready-to-use engine
//   - error: Error wrapping ErrInvalidConfig
//
// Example:
//
//	cfg := persuade.DefaultConfig()
//	cfg.Planner.QueryBudget = 2
//	engine, err := persuade.NewEngine(&cfg, persuade.WithLogger(logger))
//	if err != nil { /* handle */ }
func NewEngine(cfg *Config, opts ...Option) (*Engine, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	SetDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	e := &Engine{
		cfg:        c,
		strategy:   options.strategy,
		planner:    options.planner,
		disclosure: strategy.NewLinearProgram(),
		logger:     options.logger,
		metrics:    options.metrics,
		hooks:      hooks.Fill(options.hooks),
	}

	if e.logger == nil {
		e.logger = logger.NewNop()
	}
	if e.metrics == nil {
		e.metrics = metrics.NewNop()
	}
	if e.strategy == nil {
		e.strategy = strategy.NewGridSearch(
			strategy.WithResolution(c.Search.GridResolution),
			strategy.WithWorkers(c.Search.Workers),
		)
	}
	if e.planner == nil {
		var popts []planner.Option
		if c.Planner.Noise.Enabled {
			popts = append(popts, planner.WithNoise(c.Planner.Noise.StdDev, *c.Planner.Noise.Seed))
		}
		e.planner = planner.New(popts...)
	}
	if c.CacheResults {
		e.policies = memo.New[PolicyResult](nil)
		e.plans = memo.New(PlanResult.Clone)
		e.disclosures = memo.New(func(d Disclosure) Disclosure {
			d.Probabilities = slices.Clone(d.Probabilities)
			return d
		})
	}

	c.ValidateWithWarnings(e.logger)

	return e, nil
}

// Config returns a copy of the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SearchPolicy finds the signaling policy with the highest expected utility.
//
// The population must be non-empty with beliefs in [0,1], weights >= 0 and
// weights summing to 1 within Config.Tolerance.
//
// Parameters:
//   - ctx: Context, checked before work starts
//   - receivers: Receiver population
//
// Returns:
//   - PolicyResult: Best policy, its utility and grid counts
//   - error: ErrNoReceivers, ErrInvalidInput, ErrInvalidConfig or ctx.Err()
func (e *Engine) SearchPolicy(ctx context.Context, receivers []ReceiverType) (PolicyResult, error) {
	if err := ctx.Err(); err != nil {
		return PolicyResult{}, e.searchFailed(ctx, err)
	}
	if err := types.ValidateReceivers(receivers, e.cfg.Tolerance); err != nil {
		return PolicyResult{}, e.searchFailed(ctx, err)
	}

	var key *hash.Fingerprint
	if e.policies != nil {
		key = hash.New(kindPolicy, 0).Receivers(receivers)
		if res, ok := e.policies.Get(key.Sum64(), key.Bytes()); ok {
			e.metrics.RecordCacheLookup(kindPolicy, true)
			e.logger.Debug("policy served from cache", "receivers", len(receivers))
			e.runHook(ctx, "OnPolicySelected", e.hooks.OnPolicySelected(ctx, res))

			return res, nil
		}
		e.metrics.RecordCacheLookup(kindPolicy, false)
	}

	start := time.Now()
	res, err := e.strategy.Search(receivers)
	if err != nil {
		return PolicyResult{}, e.searchFailed(ctx, err)
	}
	elapsed := time.Since(start)

	e.metrics.RecordPolicySearch(elapsed.Seconds(), res.Candidates, res.Skipped)
	e.metrics.RecordPolicyUtility(res.Utility)
	e.logger.Info("policy selected",
		"policy", res.Policy.String(),
		"utility", res.Utility,
		"candidates", res.Candidates,
		"skipped", res.Skipped,
		"duration", elapsed,
	)

	if e.policies != nil {
		e.policies.Put(key.Sum64(), key.Bytes(), res)
	}
	e.runHook(ctx, "OnPolicySelected", e.hooks.OnPolicySelected(ctx, res))

	return res, nil
}

// SearchPolicyFrom lists receivers from src and searches them.
func (e *Engine) SearchPolicyFrom(ctx context.Context, src PopulationSource) (PolicyResult, error) {
	receivers, err := src.ListReceivers(ctx)
	if err != nil {
		return PolicyResult{}, e.searchFailed(ctx, fmt.Errorf("list receivers: %w", err))
	}

	return e.SearchPolicy(ctx, receivers)
}

// PlanThresholds plans with the configured query budget and cost.
//
// Parameters:
//   - ctx: Context, checked before work starts
//   - dist: Ascending belief distribution
//
// Returns:
//   - PlanResult: Thresholds and expected value
//   - error: ErrEmptyDistribution, ErrInvalidInput, ErrInvalidBudget or ctx.Err()
func (e *Engine) PlanThresholds(ctx context.Context, dist BeliefDistribution) (PlanResult, error) {
	return e.Plan(ctx, dist, e.cfg.Planner.QueryBudget, e.cfg.Planner.QueryCost)
}

// PlanThresholdsFrom reads a distribution from src and plans it with the
// configured budget and cost.
func (e *Engine) PlanThresholdsFrom(ctx context.Context, src DistributionSource) (PlanResult, error) {
	dist, err := src.Distribution(ctx)
	if err != nil {
		return PlanResult{}, e.planFailed(ctx, fmt.Errorf("load distribution: %w", err))
	}

	return e.PlanThresholds(ctx, dist)
}

// Plan computes the optimal segment boundaries for an explicit budget and cost.
//
// Parameters:
//   - ctx: Context, checked before work starts
//   - dist: Ascending belief distribution, probabilities summing to 1
//   - budget: Maximum number of segment boundaries, 0 <= budget < dist.Len()
//   - queryCost: Cost subtracted per split (>= 0)
//
// Returns:
//   - PlanResult: Thresholds and expected value
//   - error: ErrEmptyDistribution, ErrInvalidInput, ErrInvalidBudget or ctx.Err()
func (e *Engine) Plan(ctx context.Context, dist BeliefDistribution, budget int, queryCost float64) (PlanResult, error) {
	if err := ctx.Err(); err != nil {
		return PlanResult{}, e.planFailed(ctx, err)
	}
	if err := dist.Validate(e.cfg.Tolerance); err != nil {
		return PlanResult{}, e.planFailed(ctx, err)
	}

	var key *hash.Fingerprint
	if e.plans != nil {
		key = e.planKey(dist, budget, queryCost)
		if res, ok := e.plans.Get(key.Sum64(), key.Bytes()); ok {
			e.metrics.RecordCacheLookup(kindPlan, true)
			e.logger.Debug("plan served from cache", "points", dist.Len(), "budget", budget)
			e.runHook(ctx, "OnPlanComputed", e.hooks.OnPlanComputed(ctx, res))

			return res, nil
		}
		e.metrics.RecordCacheLookup(kindPlan, false)
	}

	start := time.Now()
	res, err := e.planner.Plan(dist, budget, queryCost)
	if err != nil {
		return PlanResult{}, e.planFailed(ctx, err)
	}
	elapsed := time.Since(start)

	e.metrics.RecordPlan(elapsed.Seconds(), budget, len(res.Thresholds))
	e.metrics.RecordPlanValue(res.ExpectedValue)
	e.logger.Info("plan computed",
		"budget", budget,
		"queryCost", queryCost,
		"thresholds", res.Thresholds,
		"expectedValue", res.ExpectedValue,
		"duration", elapsed,
	)

	if e.plans != nil {
		e.plans.Put(key.Sum64(), key.Bytes(), res)
	}
	e.runHook(ctx, "OnPlanComputed", e.hooks.OnPlanComputed(ctx, res))

	return res, nil
}

// Sweep plans every budget from 0 to dist.Len()-1 with the configured cost.
//
// The expected values are non-decreasing in the budget, which makes the
// result a utility-versus-budget curve.
//
// Parameters:
//   - ctx: Context, checked before each plan
//   - dist: Ascending belief distribution
//
// Returns:
//   - []PlanResult: One result per budget, index == budget
//   - error: First planning error
func (e *Engine) Sweep(ctx context.Context, dist BeliefDistribution) ([]PlanResult, error) {
	if err := dist.Validate(e.cfg.Tolerance); err != nil {
		return nil, e.planFailed(ctx, err)
	}

	results := make([]PlanResult, 0, dist.Len())
	for budget := range dist.Len() {
		res, err := e.Plan(ctx, dist, budget, e.cfg.Planner.QueryCost)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	e.logger.Debug("budget sweep complete",
		"points", dist.Len(),
		"best", results[len(results)-1].ExpectedValue,
	)

	return results, nil
}

// OptimalDisclosure solves the disclosure linear program for dist.
//
// Parameters:
//   - ctx: Context, checked before work starts
//   - dist: Belief distribution
//
// Returns:
//   - Disclosure: Per-point probability of sending m1 and the objective
//   - error: ErrEmptyDistribution, ErrInvalidInput, ErrInfeasibleOptimization or ctx.Err()
func (e *Engine) OptimalDisclosure(ctx context.Context, dist BeliefDistribution) (Disclosure, error) {
	if err := ctx.Err(); err != nil {
		return Disclosure{}, e.planFailed(ctx, err)
	}
	if err := dist.Validate(e.cfg.Tolerance); err != nil {
		return Disclosure{}, e.planFailed(ctx, err)
	}

	var key *hash.Fingerprint
	if e.disclosures != nil {
		key = hash.New(kindDisclosure, 0).Distribution(dist)
		if d, ok := e.disclosures.Get(key.Sum64(), key.Bytes()); ok {
			e.metrics.RecordCacheLookup(kindDisclosure, true)
			return d, nil
		}
		e.metrics.RecordCacheLookup(kindDisclosure, false)
	}

	d, err := e.disclosure.Solve(dist)
	if err != nil {
		return Disclosure{}, e.planFailed(ctx, err)
	}
	e.logger.Info("disclosure solved", "points", dist.Len(), "objective", d.Objective)

	if e.disclosures != nil {
		e.disclosures.Put(key.Sum64(), key.Bytes(), d)
	}

	return d, nil
}

// planKey fingerprints every input that can change a plan.
func (e *Engine) planKey(dist BeliefDistribution, budget int, queryCost float64) *hash.Fingerprint {
	noise := e.cfg.Planner.Noise
	f := hash.New(kindPlan, 0).
		Distribution(dist).
		Int(budget).
		Float(queryCost).
		Bool(noise.Enabled)
	if noise.Enabled {
		f.Float(noise.StdDev).Uint(uint64(*noise.Seed)) //nolint:gosec // bit pattern only
	}

	return f
}

func (e *Engine) searchFailed(ctx context.Context, err error) error {
	e.metrics.RecordSearchFailure(failureReason(err))
	e.logger.Error("policy search failed", "error", err)
	e.runHook(ctx, "OnError", e.hooks.OnError(ctx, err))

	return err
}

func (e *Engine) planFailed(ctx context.Context, err error) error {
	e.metrics.RecordPlanFailure(failureReason(err))
	e.logger.Error("planning failed", "error", err)
	e.runHook(ctx, "OnError", e.hooks.OnError(ctx, err))

	return err
}

// runHook logs a hook error and forwards it to OnError. It never changes the
// caller's result.
func (e *Engine) runHook(ctx context.Context, name string, err error) {
	if err == nil {
		return
	}

	e.logger.Error("hook failed", "hook", name, "error", err)
	if name == "OnError" {
		return
	}
	if herr := e.hooks.OnError(ctx, err); herr != nil {
		e.logger.Error("hook failed", "hook", "OnError", "error", herr)
	}
}

// failureReason maps an error to a metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, ErrInvalidBudget):
		return "invalid_budget"
	case errors.Is(err, ErrInfeasibleOptimization):
		return "infeasible"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
