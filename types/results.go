package types

import "slices"

// PolicyResult is the outcome of a policy search.
type PolicyResult struct {
	// Utility is the expected sender utility of Policy.
	Utility float64 `json:"utility"`

	// Policy is the best valid policy found.
	Policy SignalingPolicy `json:"policy"`

	// Candidates is the number of valid policies evaluated.
	Candidates int `json:"candidates"`

	// Skipped is the number of enumerated policies rejected by the
	// monotone likelihood-ratio filter.
	Skipped int `json:"skipped"`
}

// PlanResult is the outcome of a budgeted threshold plan.
type PlanResult struct {
	// Thresholds are ascending, de-duplicated indices into the distribution.
	// A threshold j places a segment boundary between points j and j+1.
	Thresholds []int `json:"thresholds"`

	// ExpectedValue is the DP terminal value value[K][n-1].
	ExpectedValue float64 `json:"expectedValue"`

	// Budget is the segment budget K the plan was computed for.
	Budget int `json:"budget"`

	// QueryCost is the cost subtracted per split.
	QueryCost float64 `json:"queryCost"`

	// Beliefs are the beliefs the DP actually ran on (perturbed when noise is enabled).
	Beliefs []float64 `json:"beliefs"`
}

// ThresholdBeliefs maps threshold indices to the belief values they sit on.
//
// Returns:
//   - []float64: Belief at each threshold, in threshold order
func (r PlanResult) ThresholdBeliefs() []float64 {
	out := make([]float64, 0, len(r.Thresholds))
	for _, idx := range r.Thresholds {
		if idx >= 0 && idx < len(r.Beliefs) {
			out = append(out, r.Beliefs[idx])
		}
	}

	return out
}

// Clone returns a deep copy so cached results cannot be mutated by callers.
func (r PlanResult) Clone() PlanResult {
	r.Thresholds = slices.Clone(r.Thresholds)
	r.Beliefs = slices.Clone(r.Beliefs)

	return r
}
