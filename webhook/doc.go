// Package webhook receives Payloop webhook notifications. It authenticates
// the raw payload, validates the event envelope, normalizes the payload
// keys to the public convention, and dispatches the event to typed
// callbacks.
//
// The package owns no transport. It takes the raw request body and the
// value of the payloop-signature header and reports what happened through
// its return value; translating that into an HTTP response stays with the
// embedding application.
//
// # Quick Start
//
//	wh := webhook.New(os.Getenv("PAYLOOP_WEBHOOK_SECRET"))
//
//	handlers := webhook.Handlers{
//		OnGrantAccess: func(ctx context.Context, e webhook.GrantAccessEvent) error {
//			return access.Activate(ctx, e.Customer.ID, string(e.Reason))
//		},
//		OnRevokeAccess: func(ctx context.Context, e webhook.RevokeAccessEvent) error {
//			return access.Deactivate(ctx, e.Customer.ID)
//		},
//		OnCheckoutCompleted: func(ctx context.Context, e webhook.CheckoutEvent) error {
//			return orders.Fulfill(ctx, e.Order.ID)
//		},
//	}
//
//	http.HandleFunc("/webhooks/payloop", func(rw http.ResponseWriter, r *http.Request) {
//		payload, err := io.ReadAll(r.Body)
//		if err != nil {
//			rw.WriteHeader(http.StatusBadRequest)
//			return
//		}
//
//		err = wh.HandleEvents(r.Context(), payload, r.Header.Get(webhook.SignatureHeader), handlers)
//		switch {
//		case errors.Is(err, webhook.ErrInvalidSignature):
//			rw.WriteHeader(http.StatusUnauthorized)
//		case errors.Is(err, webhook.ErrInvalidEvent):
//			rw.WriteHeader(http.StatusBadRequest)
//		case err != nil:
//			rw.WriteHeader(http.StatusInternalServerError)
//		default:
//			rw.WriteHeader(http.StatusOK)
//		}
//	})
//
// # Dispatch Order
//
// Each event type maps to a fixed set of callbacks. The three events that
// mean a customer gained access (subscription.active, subscription.trialing,
// subscription.paid) invoke OnGrantAccess first; the two that mean access
// was lost (subscription.paused, subscription.expired) invoke
// OnRevokeAccess first. The access-control callback runs to completion
// before the event's specific handler starts, so access state never lags a
// more specific side effect. All remaining events invoke only their
// specific handler. Unregistered callbacks are skipped without affecting
// the rest of the dispatch.
//
// # Failure Semantics
//
// HandleEvents fails fast and in a fixed order: configuration
// (ErrNoSecret), authenticity (ErrInvalidSignature), envelope structure
// (errors wrapping ErrInvalidEvent), then handler execution. Handler errors
// are returned verbatim, so errors.Is and errors.As see exactly what the
// handler returned. An event type outside the dispatched set is tolerated:
// it is logged at warn level and the call succeeds, which keeps older
// integrations working when Payloop introduces new event types.
package webhook
