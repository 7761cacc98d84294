package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	t.Run("search metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordPolicySearch(0.002, 66, 55)
		p.RecordPolicySearch(0.001, 66, 55)
		p.RecordPolicyUtility(0.6)
		p.RecordSearchFailure("invalid_input")

		require.Equal(t, 132.0, testutil.ToFloat64(p.searchCandidates.WithLabelValues("evaluated")))
		require.Equal(t, 110.0, testutil.ToFloat64(p.searchCandidates.WithLabelValues("skipped")))
		require.Equal(t, 0.6, testutil.ToFloat64(p.policyUtility))
		require.Equal(t, 1.0, testutil.ToFloat64(p.searchFailures.WithLabelValues("invalid_input")))
		require.Equal(t, 1, testutil.CollectAndCount(p.searchDuration))
	})

	t.Run("planner metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordPlan(0.003, 2, 1)
		p.RecordPlanValue(0.5)
		p.RecordPlanFailure("invalid_budget")
		p.RecordPlanFailure("invalid_budget")

		require.Equal(t, 0.5, testutil.ToFloat64(p.planValue))
		require.Equal(t, 2.0, testutil.ToFloat64(p.planFailures.WithLabelValues("invalid_budget")))
		require.Equal(t, 1, testutil.CollectAndCount(p.planDuration))
	})

	t.Run("cache metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordCacheLookup("policy", false)
		p.RecordCacheLookup("policy", true)
		p.RecordCacheLookup("policy", true)

		require.Equal(t, 2.0, testutil.ToFloat64(p.cacheLookups.WithLabelValues("policy", "hit")))
		require.Equal(t, 1.0, testutil.ToFloat64(p.cacheLookups.WithLabelValues("policy", "miss")))
	})

	t.Run("registers once under the namespace", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "")

		p.RecordPolicyUtility(1)
		p.RecordPlanValue(1)

		families, err := reg.Gather()
		require.NoError(t, err)
		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		require.Contains(t, names, "persuade_search_best_utility")
		require.Contains(t, names, "persuade_planner_expected_value")
	})
}
