package webhook

import "errors"

// Sentinel errors returned by HandleEvents. Errors returned by the caller's
// own handlers are propagated verbatim and never wrapped in one of these.
var (
	// ErrNoSecret reports that the Webhook was constructed without a
	// signing secret, so no payload can be authenticated.
	ErrNoSecret = errors.New("webhook secret is not configured")

	// ErrInvalidSignature reports that the signature does not match the
	// payload under the configured secret.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidEvent reports that the payload is not a well-formed event
	// envelope. Parse failures wrap it with detail, so test with errors.Is.
	ErrInvalidEvent = errors.New("invalid webhook event structure")
)
