package types

// MetricsCollector defines methods for recording engine metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from concurrent engine calls and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	SearchMetrics
	PlannerMetrics
	CacheMetrics
}

// SearchMetrics defines metrics for policy searches.
type SearchMetrics interface {
	// RecordPolicySearch records a completed search.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - candidates: Valid policies evaluated
	//   - skipped: Policies rejected by the likelihood-ratio filter
	RecordPolicySearch(duration float64, candidates, skipped int)

	// RecordPolicyUtility sets the utility of the most recent best policy (gauge metric).
	RecordPolicyUtility(utility float64)

	// RecordSearchFailure records a failed search.
	//
	// Parameters:
	//   - reason: Failure class ("invalid_input", "canceled", "other")
	RecordSearchFailure(reason string)
}

// PlannerMetrics defines metrics for threshold planning.
type PlannerMetrics interface {
	// RecordPlan records a completed plan.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - budget: Segment budget K
	//   - thresholds: Number of thresholds returned
	RecordPlan(duration float64, budget, thresholds int)

	// RecordPlanValue sets the expected value of the most recent plan (gauge metric).
	RecordPlanValue(value float64)

	// RecordPlanFailure records a failed plan.
	//
	// Parameters:
	//   - reason: Failure class ("invalid_input", "invalid_budget", "infeasible", "canceled", "other")
	RecordPlanFailure(reason string)
}

// CacheMetrics defines metrics for the engine result cache.
type CacheMetrics interface {
	// RecordCacheLookup records a cache lookup.
	//
	// Parameters:
	//   - kind: Result kind ("policy", "plan", "disclosure")
	//   - hit: true if the lookup was served from cache
	RecordCacheLookup(kind string, hit bool)
}
