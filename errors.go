package payloop

import "fmt"

// APIError is a request the Payloop API rejected. The client returns it
// for every non-2xx response; use errors.As to get at the status code and
// the provider's error code.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the provider's machine-readable error code, when present.
	Code string
	// Message is the provider's human-readable description.
	Message string
	// RequestID identifies the request in the Payloop dashboard logs.
	RequestID string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("payloop API error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("payloop API error: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
}
