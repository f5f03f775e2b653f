// Package payloop is a client for the Payloop payments platform.
//
// Two things live in this module. This package wraps the REST API: create
// checkout sessions, look up customers and subscriptions, search
// transactions, manage discounts and license keys. The webhook subpackage
// receives, verifies, and dispatches the notifications Payloop sends back.
//
// # Quick Start
//
//	client := payloop.New(os.Getenv("PAYLOOP_API_KEY"))
//
//	checkout, err := client.CreateCheckout(ctx, &payloop.CreateCheckoutParams{
//		ProductID:  "prod_6tW66i0oZM7w1qXReHJrwg",
//		RequestID:  "order-1042",
//		SuccessURL: "https://example.com/thanks",
//	})
//	if err != nil {
//		return err
//	}
//	http.Redirect(rw, r, checkout.CheckoutURL, http.StatusSeeOther)
//
// Use WithSandbox while integrating. Sandbox and live API keys are not
// interchangeable, and objects carry a Mode field naming the environment
// they belong to.
//
// # Errors
//
// Every non-2xx response comes back as *APIError carrying the HTTP status,
// the provider's error code, and the request id shown in the dashboard
// logs:
//
//	var apiErr *payloop.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//		// treat as absent
//	}
//
// The client never retries. Mutating requests carry a generated
// Idempotency-Key header, so rerunning a failed call cannot double-charge.
package payloop
