package persuade

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	strategy PolicyStrategy
	planner  ThresholdPlanner
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
}

// WithStrategy replaces the policy search strategy.
//
// The default is a strategy.GridSearch built from Config.Search.
//
// Parameters:
//   - s: PolicyStrategy implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	search := strategy.NewGridSearch(strategy.WithResolution(51), strategy.WithWorkers(4))
//	engine, _ := persuade.NewEngine(&cfg, persuade.WithStrategy(search))
func WithStrategy(s PolicyStrategy) Option {
	return func(o *engineOptions) {
		o.strategy = s
	}
}

// WithPlanner replaces the threshold planner.
//
// The default is a planner.DP, with belief noise when Config.Planner.Noise is enabled.
//
// Parameters:
//   - p: ThresholdPlanner implementation
//
// Returns:
//   - Option: Functional option for NewEngine
func WithPlanner(p ThresholdPlanner) Option {
	return func(o *engineOptions) {
		o.planner = p
	}
}

// WithHooks sets result event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions; nil callbacks are ignored
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	hooks := &persuade.Hooks{
//	    OnPlanComputed: func(ctx context.Context, res persuade.PlanResult) error {
//	        return plot(res)
//	    },
//	}
//	engine, _ := persuade.NewEngine(&cfg, persuade.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	engine, _ := persuade.NewEngine(&cfg, persuade.WithMetrics(metrics.NewPrometheus(nil, "")))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewEngine
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}
