package webhook_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bjaus/payloop/webhook"
)

func Example() {
	w := webhook.New("whsec_example")

	h := webhook.Handlers{
		OnGrantAccess: func(ctx context.Context, e webhook.GrantAccessEvent) error {
			fmt.Printf("grant access: %s (%s)\n", e.Customer.Email, e.Reason)
			return nil
		},
		OnSubscriptionActive: func(ctx context.Context, e webhook.SubscriptionEvent) error {
			fmt.Println("subscription active:", e.ID)
			return nil
		},
	}

	// In an HTTP handler the payload is the request body and the signature
	// comes from the payloop-signature header.
	payload := []byte(`{"id":"evt_1","eventType":"subscription.active","createdAt":1730107800,"object":{"object":"subscription","id":"sub_42","status":"active","customer":{"id":"cus_7","email":"ada@example.com"}}}`)
	signature := webhook.ComputeSignature(payload, "whsec_example")

	if err := w.HandleEvents(context.Background(), payload, signature, h); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// grant access: ada@example.com (subscription_active)
	// subscription active: sub_42
}

func ExampleVerify() {
	payload := []byte(`{"id":"evt_1"}`)
	signature := webhook.ComputeSignature(payload, "whsec_example")

	fmt.Println(webhook.Verify(payload, signature, "whsec_example"))
	fmt.Println(webhook.Verify(payload, signature, "a different secret"))

	// Output:
	// true
	// false
}

func ExampleWebhook_HandleEvents_statusCodes() {
	w := webhook.New("whsec_example")

	status := func(err error) int {
		switch {
		case err == nil:
			return http.StatusOK
		case errors.Is(err, webhook.ErrNoSecret), errors.Is(err, webhook.ErrInvalidSignature):
			return http.StatusUnauthorized
		case errors.Is(err, webhook.ErrInvalidEvent):
			return http.StatusBadRequest
		default:
			return http.StatusInternalServerError
		}
	}

	payload := []byte(`{"id":"evt_1","eventType":"refund.created","createdAt":1,"object":{"object":"refund","id":"ref_1"}}`)

	fmt.Println(status(w.HandleEvents(context.Background(), payload, webhook.ComputeSignature(payload, "whsec_example"), webhook.Handlers{})))
	fmt.Println(status(w.HandleEvents(context.Background(), payload, "tampered", webhook.Handlers{})))

	// Output:
	// 200
	// 401
}

func ExampleWithOnUnknownEvent() {
	w := webhook.New("whsec_example", webhook.WithOnUnknownEvent(func(_ context.Context, eventType string) {
		fmt.Println("unhandled event type:", eventType)
	}))

	payload := []byte(`{"id":"evt_1","eventType":"invoice.settled","createdAt":1,"object":{"object":"transaction","id":"txn_1"}}`)
	err := w.HandleEvents(context.Background(), payload, webhook.ComputeSignature(payload, "whsec_example"), webhook.Handlers{})
	fmt.Println("error:", err)

	// Output:
	// unhandled event type: invoice.settled
	// error: <nil>
}
