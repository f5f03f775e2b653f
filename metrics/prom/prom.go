// Package prom is a Prometheus-backed implementation of webhook.Metrics.
//
// The Collector registers nothing on its own: add it to the registry your
// application already exposes.
//
//	collector := prom.New("myapp")
//	registry.MustRegister(collector)
//
//	wh := webhook.New(secret, webhook.WithMetrics(collector))
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts webhook events by type and outcome and tracks how long
// each HandleEvents call took. It implements both webhook.Metrics and
// prometheus.Collector.
type Collector struct {
	events   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New returns a Collector whose metric names are prefixed with namespace.
func New(namespace string) *Collector {
	return &Collector{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payloop_webhook_events_total",
				Help:      "Webhook events by event type and outcome.",
			},
			[]string{"event_type", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "payloop_webhook_duration_seconds",
				Help:      "Time spent verifying, parsing, and dispatching one event.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
}

// ObserveEvent implements webhook.Metrics. An empty eventType (a call that
// failed before parsing) is recorded as "none".
func (c *Collector) ObserveEvent(eventType, outcome string, elapsed time.Duration) {
	if eventType == "" {
		eventType = "none"
	}
	c.events.WithLabelValues(eventType, outcome).Inc()
	c.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.events.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.events.Collect(ch)
	c.duration.Collect(ch)
}
