// Package persuade provides a Bayesian persuasion engine: it searches for the
// signaling policy that maximizes a sender's expected utility over a
// population of receivers, and plans budgeted belief thresholds with dynamic
// programming.
//
// A sender observes a binary world state and commits to a signaling policy,
// the probability of each message given each state. Receivers update their
// prior belief with Bayes' rule and act when their posterior reaches 0.5. The
// sender gains one unit whenever a receiver acts.
//
// # Quick Start
//
// Search a receiver population for the best policy:
//
//	import "github.com/arloliu/persuade"
//
//	engine, err := persuade.NewEngine(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := engine.SearchPolicy(ctx, []persuade.ReceiverType{
//	    {Belief: 0.2, Weight: 0.5},
//	    {Belief: 0.6, Weight: 0.5},
//	})
//	fmt.Println(res.Policy, res.Utility)
//
// Plan thresholds over a belief distribution:
//
//	plan, err := engine.Plan(ctx, dist, 2, 0.05)
//	fmt.Println(plan.Thresholds, plan.ThresholdBeliefs())
//
// # Components
//
//   - oracle: posterior beliefs and the receiver decision rule
//   - strategy: grid policy search and the linear-program disclosure solver
//   - planner: the budgeted threshold DP with optional seeded belief noise
//   - source: static and generated populations and distributions
//
// # Advanced Usage
//
// Custom resolution, parallel evaluation and observability:
//
//	cfg := persuade.DefaultConfig()
//	cfg.Search.GridResolution = 101
//	cfg.Search.Workers = runtime.NumCPU()
//	cfg.CacheResults = true
//
//	engine, err := persuade.NewEngine(&cfg,
//	    persuade.WithLogger(logger),
//	    persuade.WithMetrics(metrics.NewPrometheus(nil, "")),
//	    persuade.WithHooks(&persuade.Hooks{
//	        OnPolicySelected: func(ctx context.Context, res persuade.PolicyResult) error {
//	            return report(res)
//	        },
//	    }),
//	)
//
// See the examples/ directory and cmd/persuade for complete programs.
package persuade
