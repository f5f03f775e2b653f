package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bjaus/payloop/internal/casing"
)

// SignatureHeader is the HTTP header Payloop delivers the payload signature
// in. Callers extract it themselves: this package never touches HTTP
// request or response objects, and mapping failures to status codes belongs
// to the embedding application.
const SignatureHeader = "payloop-signature"

// Webhook verifies, parses, and dispatches Payloop webhook notifications.
//
// A Webhook holds no state between calls; the same instance can serve any
// number of concurrent HandleEvents calls.
type Webhook struct {
	secret    string
	logger    *slog.Logger
	metrics   Metrics
	onUnknown func(ctx context.Context, eventType string)
}

// Option configures a Webhook.
type Option func(*Webhook)

// WithLogger replaces the logger used for the unknown-event warning. The
// default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Webhook) {
		w.logger = l
	}
}

// WithMetrics registers m to receive one observation per HandleEvents call.
func WithMetrics(m Metrics) Option {
	return func(w *Webhook) {
		w.metrics = m
	}
}

// WithOnUnknownEvent registers fn to run instead of the default warning log
// when an event arrives whose type this package does not dispatch. The
// event still counts as handled either way: HandleEvents returns nil.
func WithOnUnknownEvent(fn func(ctx context.Context, eventType string)) Option {
	return func(w *Webhook) {
		w.onUnknown = fn
	}
}

// New returns a Webhook that authenticates payloads with secret. The secret
// is the signing key shown for the endpoint in the Payloop dashboard.
func New(secret string, opts ...Option) *Webhook {
	w := &Webhook{
		secret:  secret,
		logger:  slog.Default(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// HandleEvents authenticates payload against signature, parses the event
// envelope, and invokes the matching callbacks in h.
//
// The stages run in a fixed order. A missing secret fails with ErrNoSecret
// before anything is read. A signature mismatch fails with
// ErrInvalidSignature before the payload is parsed. A malformed envelope
// fails with an error wrapping ErrInvalidEvent. Only then are handlers
// invoked, strictly sequentially; the first handler error stops the
// remaining callbacks for this event and is returned to the caller
// unchanged, with its identity intact for errors.Is and errors.As.
//
// Events with a type this package does not dispatch are not an error: they
// are logged at warn level (or passed to the WithOnUnknownEvent hook) and
// HandleEvents returns nil.
//
// ctx is passed through to the handlers as given. Dispatch itself does not
// watch for cancellation: once handlers start running, the call completes
// or stops at the first failure.
func (w *Webhook) HandleEvents(ctx context.Context, payload []byte, signature string, h Handlers) error {
	start := time.Now()

	if w.secret == "" {
		w.metrics.ObserveEvent("", OutcomeNoSecret, time.Since(start))
		return ErrNoSecret
	}
	if !Verify(payload, signature, w.secret) {
		w.metrics.ObserveEvent("", OutcomeInvalidSignature, time.Since(start))
		return ErrInvalidSignature
	}

	ev, err := ParseEvent(payload)
	if err != nil {
		w.metrics.ObserveEvent("", OutcomeInvalidEvent, time.Since(start))
		return err
	}

	obj, err := normalizeObject(ev.Object)
	if err != nil {
		w.metrics.ObserveEvent(string(ev.Type), OutcomeInvalidEvent, time.Since(start))
		return err
	}

	err = w.route(ctx, ev, obj, h)
	w.metrics.ObserveEvent(string(ev.Type), outcome(ev, err), time.Since(start))
	return err
}

// outcome classifies a finished dispatch for metrics.
func outcome(ev *Event, err error) string {
	switch {
	case err == nil && !ev.Type.Known():
		return OutcomeUnknownEvent
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrInvalidEvent):
		return OutcomeInvalidEvent
	default:
		return OutcomeHandlerError
	}
}

// normalizeObject decodes the raw object payload and rewrites its keys from
// the wire convention to the public one. Numbers keep their exact wire
// representation.
func normalizeObject(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	return casing.CamelizeKeys(obj), nil
}
