// Package metrics provides MetricsCollector implementations.
package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/persuade/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are created and registered lazily on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	searchDuration   prometheus.Histogram
	searchCandidates *prometheus.CounterVec
	searchFailures   *prometheus.CounterVec
	policyUtility    prometheus.Gauge

	planDuration   *prometheus.HistogramVec
	planThresholds prometheus.Histogram
	planFailures   *prometheus.CounterVec
	planValue      prometheus.Gauge

	cacheLookups *prometheus.CounterVec
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "persuade" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "persuade"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.searchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Duration of signaling policy searches in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		})
		p.searchCandidates = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "policies_total",
			Help:      "Grid policies seen by searches, by outcome (evaluated, skipped).",
		}, []string{"outcome"})
		p.searchFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "failures_total",
			Help:      "Failed policy searches by reason.",
		}, []string{"reason"})
		p.policyUtility = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "best_utility",
			Help:      "Expected utility of the most recently selected policy.",
		})

		p.planDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "duration_seconds",
			Help:      "Duration of threshold plans in seconds by budget.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"budget"})
		p.planThresholds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "thresholds",
			Help:      "Number of thresholds returned per plan.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		})
		p.planFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "failures_total",
			Help:      "Failed threshold plans by reason.",
		}, []string{"reason"})
		p.planValue = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "expected_value",
			Help:      "Expected value of the most recent plan.",
		})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Result cache lookups by kind and result (hit, miss).",
		}, []string{"kind", "result"})

		p.reg.MustRegister(
			p.searchDuration,
			p.searchCandidates,
			p.searchFailures,
			p.policyUtility,
			p.planDuration,
			p.planThresholds,
			p.planFailures,
			p.planValue,
			p.cacheLookups,
		)
	})
}

// SearchMetrics implementation

// RecordPolicySearch observes search duration and counts evaluated and skipped policies.
func (p *PrometheusCollector) RecordPolicySearch(duration float64, candidates, skipped int) {
	p.ensureRegistered()
	p.searchDuration.Observe(duration)
	p.searchCandidates.WithLabelValues("evaluated").Add(float64(candidates))
	p.searchCandidates.WithLabelValues("skipped").Add(float64(skipped))
}

// RecordPolicyUtility sets the best utility gauge.
func (p *PrometheusCollector) RecordPolicyUtility(utility float64) {
	p.ensureRegistered()
	p.policyUtility.Set(utility)
}

// RecordSearchFailure increments the search failure counter.
func (p *PrometheusCollector) RecordSearchFailure(reason string) {
	p.ensureRegistered()
	p.searchFailures.WithLabelValues(reason).Inc()
}

// PlannerMetrics implementation

// RecordPlan observes plan duration and threshold count.
func (p *PrometheusCollector) RecordPlan(duration float64, budget, thresholds int) {
	p.ensureRegistered()
	p.planDuration.WithLabelValues(strconv.Itoa(budget)).Observe(duration)
	p.planThresholds.Observe(float64(thresholds))
}

// RecordPlanValue sets the plan value gauge.
func (p *PrometheusCollector) RecordPlanValue(value float64) {
	p.ensureRegistered()
	p.planValue.Set(value)
}

// RecordPlanFailure increments the plan failure counter.
func (p *PrometheusCollector) RecordPlanFailure(reason string) {
	p.ensureRegistered()
	p.planFailures.WithLabelValues(reason).Inc()
}

// CacheMetrics implementation

// RecordCacheLookup increments the cache lookup counter.
func (p *PrometheusCollector) RecordCacheLookup(kind string, hit bool) {
	p.ensureRegistered()
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(kind, result).Inc()
}
