// Package metrics records Prometheus metrics for pattern expansion.
//
// Metrics:
//   - braces_patterns_total{result}: patterns handled, by outcome
//   - braces_expansions_total: distinct expansions produced
//   - braces_expansion_duration_seconds: time spent parsing and iterating one pattern
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pattern outcomes used as the "result" label.
const (
	ResultOK        = "ok"
	ResultMalformed = "malformed"
	ResultTooLarge  = "too_large"
	ResultCancelled = "cancelled"
)

// Collector owns the expansion metrics and the registry they live in.
type Collector struct {
	registry   *prometheus.Registry
	patterns   *prometheus.CounterVec
	expansions prometheus.Counter
	duration   prometheus.Histogram
}

// NewCollector registers the expansion metrics in registry.
// A nil registry gets a fresh one.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		patterns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "braces",
				Name:      "patterns_total",
				Help:      "Total number of patterns handled, by result.",
			},
			[]string{"result"},
		),
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "braces",
			Name:      "expansions_total",
			Help:      "Total number of distinct expansions produced.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "braces",
			Name:      "expansion_duration_seconds",
			Help:      "Time spent expanding a single pattern.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 7), // 10µs .. 10s
		}),
	}
	registry.MustRegister(c.patterns, c.expansions, c.duration)

	return c
}

// RecordPattern counts one handled pattern with the given result label.
func (c *Collector) RecordPattern(result string) {
	c.patterns.WithLabelValues(result).Inc()
}

// RecordExpansions adds n produced expansions and observes d.
func (c *Collector) RecordExpansions(n int, d time.Duration) {
	c.expansions.Add(float64(n))
	c.duration.Observe(d.Seconds())
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
