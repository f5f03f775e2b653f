package webhook

import "time"

// Outcome labels reported to Metrics, one per HandleEvents call.
const (
	OutcomeOK               = "ok"
	OutcomeUnknownEvent     = "unknown_event"
	OutcomeNoSecret         = "no_secret"
	OutcomeInvalidSignature = "invalid_signature"
	OutcomeInvalidEvent     = "invalid_event"
	OutcomeHandlerError     = "handler_error"
)

// Metrics receives one observation per HandleEvents call. eventType is
// empty when the call failed before the envelope was parsed. The
// metrics/prom package provides a Prometheus-backed implementation.
type Metrics interface {
	ObserveEvent(eventType, outcome string, elapsed time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) ObserveEvent(string, string, time.Duration) {}
