// Package strategy provides built-in signaling policy strategies.
//
// Strategies determine which two-message signaling policy a sender commits to
// for a heterogeneous receiver population. The package includes:
//
//   - GridSearch: Exhaustive search over a discretized (p0, p1) grid, filtered by
//     the monotone likelihood-ratio constraint (recommended)
//   - LinearProgram: Alternate disclosure vector over a belief distribution,
//     solved as a linear program
//
// # Strategy Selection Guide
//
// GridSearch:
//   - Use for receiver populations with heterogeneous priors
//   - Deterministic: ties go to the first policy in (p0, p1) ascending order
//   - Cost grows as O(resolution^2 * receivers); rows can be evaluated in parallel
//   - Configuration: grid resolution, workers, state priors
//
// LinearProgram:
//   - Use when only a per-belief disclosure probability is needed
//   - Solver failures surface as types.ErrInfeasibleOptimization
//
// Custom strategies can be implemented by satisfying the types.PolicyStrategy interface.
package strategy
