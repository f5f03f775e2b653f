package webhook

import (
	"context"

	"github.com/bjaus/payloop"
)

// GrantReason explains why OnGrantAccess is being invoked.
type GrantReason string

const (
	GrantSubscriptionActive   GrantReason = "subscription_active"
	GrantSubscriptionTrialing GrantReason = "subscription_trialing"
	GrantSubscriptionPaid     GrantReason = "subscription_paid"
)

// RevokeReason explains why OnRevokeAccess is being invoked.
type RevokeReason string

const (
	RevokeSubscriptionPaused  RevokeReason = "subscription_paused"
	RevokeSubscriptionExpired RevokeReason = "subscription_expired"
)

// EventHeader carries the envelope fields that are delivered alongside
// every event payload. The fields keep their webhook prefix so that they
// can never collide with a field of the embedded entity.
type EventHeader struct {
	WebhookEventType EventType `json:"webhookEventType"`
	WebhookID        string    `json:"webhookId"`
	WebhookCreatedAt int64     `json:"webhookCreatedAt"`
}

// CheckoutEvent is the payload passed to OnCheckoutCompleted. The checkout
// fields are promoted to the top level next to the envelope fields.
type CheckoutEvent struct {
	EventHeader
	payloop.Checkout
}

// RefundEvent is the payload passed to OnRefundCreated.
type RefundEvent struct {
	EventHeader
	payloop.Refund
}

// DisputeEvent is the payload passed to OnDisputeCreated.
type DisputeEvent struct {
	EventHeader
	payloop.Dispute
}

// SubscriptionEvent is the payload passed to the subscription lifecycle
// handlers.
type SubscriptionEvent struct {
	EventHeader
	payloop.Subscription
}

// GrantAccessEvent is the payload passed to OnGrantAccess. It carries the
// reason for the grant and the subscription it applies to; the envelope
// fields are not repeated here.
type GrantAccessEvent struct {
	Reason GrantReason `json:"reason"`
	payloop.Subscription
}

// RevokeAccessEvent is the payload passed to OnRevokeAccess.
type RevokeAccessEvent struct {
	Reason RevokeReason `json:"reason"`
	payloop.Subscription
}

// Handlers is the set of callbacks HandleEvents may invoke for an event.
//
// Every field is optional. A nil field is skipped without affecting the
// rest of the dispatch for that event: a subscription.active event with no
// OnGrantAccess still reaches OnSubscriptionActive. Handlers are invoked
// strictly sequentially, and for the subscription lifecycle rows the
// access-control callback always completes before the specific handler
// starts. The first handler error aborts the remaining callbacks for that
// event and is returned to the caller unchanged.
type Handlers struct {
	// OnGrantAccess runs before the specific handler whenever an event
	// means the customer should have access: subscription.active,
	// subscription.trialing, and subscription.paid.
	OnGrantAccess func(ctx context.Context, e GrantAccessEvent) error

	// OnRevokeAccess runs before the specific handler whenever an event
	// means the customer should lose access: subscription.paused and
	// subscription.expired.
	OnRevokeAccess func(ctx context.Context, e RevokeAccessEvent) error

	OnCheckoutCompleted func(ctx context.Context, e CheckoutEvent) error
	OnRefundCreated     func(ctx context.Context, e RefundEvent) error
	OnDisputeCreated    func(ctx context.Context, e DisputeEvent) error

	OnSubscriptionActive          func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionTrialing        func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionPaid            func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionPaused          func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionExpired         func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionCanceled        func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionUnpaid          func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionUpdate          func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionPastDue         func(ctx context.Context, e SubscriptionEvent) error
	OnSubscriptionScheduledCancel func(ctx context.Context, e SubscriptionEvent) error
}
