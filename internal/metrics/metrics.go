// Package metrics provides Prometheus metrics for the dashboard API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector exported on /metrics.
type Metrics struct {
	WindowFallbacks *prometheus.CounterVec
	RebucketCases   *prometheus.CounterVec
	CacheLookups    *prometheus.CounterVec
	IngestedCases   *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a private registry and registers all collectors on it.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		WindowFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bondwatch_window_fallback_total",
				Help: "Requests whose window label was unknown and fell back to 24h, by endpoint.",
			},
			[]string{"endpoint"},
		),
		RebucketCases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bondwatch_rebucket_cases_total",
				Help: "Cases visited by the rebucket sweep, by result (unchanged, moved, unclassifiable).",
			},
			[]string{"result"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bondwatch_dashboard_cache_lookups_total",
				Help: "Dashboard cache lookups by result (hit, miss, error, bypass).",
			},
			[]string{"result"},
		),
		IngestedCases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bondwatch_ingested_cases_total",
				Help: "Cases accepted or rejected by ingestion, by county and status.",
			},
			[]string{"county", "status"},
		),
		registry: reg,
	}

	reg.MustRegister(m.WindowFallbacks)
	reg.MustRegister(m.RebucketCases)
	reg.MustRegister(m.CacheLookups)
	reg.MustRegister(m.IngestedCases)

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry (tests gather from it).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordWindowFallback counts one unknown-window fallback. Safe on a nil receiver.
func (m *Metrics) RecordWindowFallback(endpoint string) {
	if m == nil {
		return
	}
	m.WindowFallbacks.WithLabelValues(endpoint).Inc()
}

// RecordRebucket adds n visited cases under result. Safe on a nil receiver.
func (m *Metrics) RecordRebucket(result string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RebucketCases.WithLabelValues(result).Add(float64(n))
}

// RecordCacheLookup counts one cache lookup. Safe on a nil receiver.
func (m *Metrics) RecordCacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// RecordIngest counts one ingestion outcome. Safe on a nil receiver.
func (m *Metrics) RecordIngest(county, status string) {
	if m == nil {
		return
	}
	m.IngestedCases.WithLabelValues(county, status).Inc()
}
