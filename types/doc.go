// Package types provides core type definitions and interfaces for the persuade library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root persuade package and the engines in strategy, planner and oracle.
//
// Key types:
//   - ReceiverType: A receiver's prior belief and population weight
//   - SignalingPolicy: Two-message conditional distribution over messages given the state
//   - BeliefDistribution: Ordered belief/probability pairs consumed by the planner
//   - PolicyResult, PlanResult: Engine outputs handed to reporting collaborators
//   - Logger, MetricsCollector, Hooks: Ambient dependencies injected into the Engine
package types
