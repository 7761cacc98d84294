package metrics

import "github.com/arloliu/persuade/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the engine default when no collector is
// configured.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	engine, _ := persuade.NewEngine(cfg, persuade.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SearchMetrics implementation

// RecordPolicySearch discards the search metric.
func (n *NopMetrics) RecordPolicySearch(_ /* duration */ float64, _ /* candidates */, _ /* skipped */ int) {
}

// RecordPolicyUtility discards the utility gauge.
func (n *NopMetrics) RecordPolicyUtility(_ /* utility */ float64) {}

// RecordSearchFailure discards the failure counter.
func (n *NopMetrics) RecordSearchFailure(_ /* reason */ string) {}

// PlannerMetrics implementation

// RecordPlan discards the plan metric.
func (n *NopMetrics) RecordPlan(_ /* duration */ float64, _ /* budget */, _ /* thresholds */ int) {}

// RecordPlanValue discards the plan value gauge.
func (n *NopMetrics) RecordPlanValue(_ /* value */ float64) {}

// RecordPlanFailure discards the failure counter.
func (n *NopMetrics) RecordPlanFailure(_ /* reason */ string) {}

// CacheMetrics implementation

// RecordCacheLookup discards the cache lookup counter.
func (n *NopMetrics) RecordCacheLookup(_ /* kind */ string, _ /* hit */ bool) {}
