package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RiskMetrics contains the metric surface of the scan pipeline and the
// monitoring scheduler. Record* helpers are nil-safe so tests can run
// without a registry.
type RiskMetrics struct {
	OrdersEnqueuedTotal prometheus.CounterVec
	OrdersScannedTotal  prometheus.CounterVec
	OrdersFailedTotal   prometheus.CounterVec
	ScanDuration        prometheus.HistogramVec

	DecisionsTotal      prometheus.CounterVec
	HighRiskOrdersTotal prometheus.CounterVec

	ProviderCallsTotal    prometheus.CounterVec
	ProviderTimeoutsTotal prometheus.CounterVec
	CacheLookupsTotal     prometheus.CounterVec

	LayerDiscrepancyTotal prometheus.CounterVec

	SweepsCompletedTotal prometheus.CounterVec
	OrdersClearedTotal   prometheus.CounterVec
	TickDuration         prometheus.Histogram
	TickFailuresTotal    prometheus.Counter
}

func NewRiskMetrics() *RiskMetrics {
	return &RiskMetrics{
		OrdersEnqueuedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_enqueued_total",
				Help: "Orders accepted into the intake queue",
			},
			[]string{"merchant_id", "platform"},
		),

		OrdersScannedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_scanned_total",
				Help: "Orders that completed the fusion pipeline",
			},
			[]string{"merchant_id", "risk_level"},
		),

		OrdersFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_failed_total",
				Help: "Orders that hit an unrecoverable pipeline error",
			},
			[]string{"merchant_id"},
		),

		ScanDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_scan_duration_seconds",
				Help:    "Per-order fusion pipeline latency",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 3, 5, 10},
			},
			[]string{"merchant_id", "layer2_used"},
		),

		DecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "risk_decisions_total",
				Help: "Final decisions by kind",
			},
			[]string{"merchant_id", "decision"},
		),

		HighRiskOrdersTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "high_risk_orders_total",
				Help: "Orders assessed HIGH or CRITICAL",
			},
			[]string{"merchant_id"},
		),

		ProviderCallsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validation_provider_calls_total",
				Help: "External validation lookups by subject kind and outcome",
			},
			[]string{"kind", "outcome"},
		),

		ProviderTimeoutsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validation_provider_timeouts_total",
				Help: "External validation lookups that hit the deadline",
			},
			[]string{"kind"},
		),

		CacheLookupsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validation_cache_lookups_total",
				Help: "Validation cache lookups by result (hit/miss/stale)",
			},
			[]string{"result"},
		),

		LayerDiscrepancyTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "layer_discrepancy_total",
				Help: "Assessments where Layer 2 strongly disagreed with Layer 1",
			},
			[]string{"merchant_id"},
		),

		SweepsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monitoring_sweeps_completed_total",
				Help: "Completed per-merchant monitoring sweeps",
			},
			[]string{"merchant_id", "trigger"},
		),

		OrdersClearedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monitoring_orders_cleared_total",
				Help: "Post-auth orders cleared from monitoring",
			},
			[]string{"merchant_id"},
		),

		TickDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scheduler_tick_duration_seconds",
				Help:    "Wall time of one scheduler tick",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
			},
		),

		TickFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "scheduler_merchant_failures_total",
				Help: "Per-merchant sweep failures surfaced by ticks",
			},
		),
	}
}

func (m *RiskMetrics) RecordEnqueued(merchantID, platform string) {
	if m == nil {
		return
	}
	m.OrdersEnqueuedTotal.WithLabelValues(merchantID, platform).Inc()
}

func (m *RiskMetrics) RecordScanned(merchantID, riskLevel, decision string, layer2Used bool, seconds float64) {
	if m == nil {
		return
	}
	m.OrdersScannedTotal.WithLabelValues(merchantID, riskLevel).Inc()
	m.DecisionsTotal.WithLabelValues(merchantID, decision).Inc()
	layer2 := "false"
	if layer2Used {
		layer2 = "true"
	}
	m.ScanDuration.WithLabelValues(merchantID, layer2).Observe(seconds)
}

func (m *RiskMetrics) RecordFailed(merchantID string) {
	if m == nil {
		return
	}
	m.OrdersFailedTotal.WithLabelValues(merchantID).Inc()
}

func (m *RiskMetrics) RecordHighRisk(merchantID string) {
	if m == nil {
		return
	}
	m.HighRiskOrdersTotal.WithLabelValues(merchantID).Inc()
}

func (m *RiskMetrics) RecordProviderCall(kind, outcome string) {
	if m == nil {
		return
	}
	m.ProviderCallsTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *RiskMetrics) RecordProviderTimeout(kind string) {
	if m == nil {
		return
	}
	m.ProviderTimeoutsTotal.WithLabelValues(kind).Inc()
}

func (m *RiskMetrics) RecordCacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookupsTotal.WithLabelValues(result).Inc()
}

func (m *RiskMetrics) RecordDiscrepancy(merchantID string) {
	if m == nil {
		return
	}
	m.LayerDiscrepancyTotal.WithLabelValues(merchantID).Inc()
}

func (m *RiskMetrics) RecordSweep(merchantID, trigger string, cleared int) {
	if m == nil {
		return
	}
	m.SweepsCompletedTotal.WithLabelValues(merchantID, trigger).Inc()
	if cleared > 0 {
		m.OrdersClearedTotal.WithLabelValues(merchantID).Add(float64(cleared))
	}
}

func (m *RiskMetrics) RecordTick(seconds float64, failures int) {
	if m == nil {
		return
	}
	m.TickDuration.Observe(seconds)
	if failures > 0 {
		m.TickFailuresTotal.Add(float64(failures))
	}
}
