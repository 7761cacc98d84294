// Package planner partitions an ordered belief distribution into at most K
// contiguous segments under a query budget.
//
// The DP planner fills a (K+1) x n table where value[k][i] is the best value
// using at most k boundaries over the prefix ending at i:
//
//	value[0][i] = p_i * b_i
//	value[k][i] = max(value[k-1][i], max_{j<i} value[k-1][j] + Σ_{t=j+1..i} p_t*b_t - cost)
//
// Thresholds are recovered by walking the recorded split points back from
// (K, n-1). An optional noise mode perturbs beliefs with seeded Gaussian noise
// before planning; the DP itself is unchanged.
package planner
