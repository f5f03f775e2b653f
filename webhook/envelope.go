package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// EventType identifies what happened on the Payloop side. The set of types
// this package dispatches is closed; any other value is carried through as
// an unknown type, which HandleEvents tolerates without failing.
type EventType string

const (
	EventCheckoutCompleted           EventType = "checkout.completed"
	EventRefundCreated               EventType = "refund.created"
	EventDisputeCreated              EventType = "dispute.created"
	EventSubscriptionActive          EventType = "subscription.active"
	EventSubscriptionTrialing        EventType = "subscription.trialing"
	EventSubscriptionPaid            EventType = "subscription.paid"
	EventSubscriptionPaused          EventType = "subscription.paused"
	EventSubscriptionExpired         EventType = "subscription.expired"
	EventSubscriptionCanceled        EventType = "subscription.canceled"
	EventSubscriptionUnpaid          EventType = "subscription.unpaid"
	EventSubscriptionUpdate          EventType = "subscription.update"
	EventSubscriptionPastDue         EventType = "subscription.past_due"
	EventSubscriptionScheduledCancel EventType = "subscription.scheduled_cancel"
)

// Known reports whether t is one of the event types this package dispatches.
func (t EventType) Known() bool {
	switch t {
	case EventCheckoutCompleted,
		EventRefundCreated,
		EventDisputeCreated,
		EventSubscriptionActive,
		EventSubscriptionTrialing,
		EventSubscriptionPaid,
		EventSubscriptionPaused,
		EventSubscriptionExpired,
		EventSubscriptionCanceled,
		EventSubscriptionUnpaid,
		EventSubscriptionUpdate,
		EventSubscriptionPastDue,
		EventSubscriptionScheduledCancel:
		return true
	}
	return false
}

// Event is the envelope Payloop wraps every notification in. CreatedAt is
// the provider's raw integer timestamp; its unit is not part of the wire
// contract, so it is never reinterpreted here.
type Event struct {
	ID         string
	Type       EventType
	CreatedAt  int64
	ObjectType string
	Object     json.RawMessage
}

// header returns the envelope fields that accompany a dispatched payload.
func (e *Event) header() EventHeader {
	return EventHeader{
		WebhookEventType: e.Type,
		WebhookID:        e.ID,
		WebhookCreatedAt: e.CreatedAt,
	}
}

// knownObject reports whether s names a Payloop object kind that can appear
// as an event payload.
func knownObject(s string) bool {
	switch s {
	case "checkout", "customer", "order", "product", "subscription", "refund", "dispute", "transaction":
		return true
	}
	return false
}

// ParseEvent validates the envelope shape of payload and extracts it.
//
// The envelope must be a JSON object with a string id, a string eventType, a
// numeric createdAt, and an object payload under object whose own object
// field names one of the Payloop object kinds. Anything else fails with an
// error wrapping ErrInvalidEvent. The eventType value itself is not
// validated here: unknown types are a routing concern, not a parse error.
func ParseEvent(payload []byte) (*Event, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrInvalidEvent)
	}

	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrInvalidEvent)
	}

	id := root.Get("id")
	if id.Type != gjson.String {
		return nil, fmt.Errorf("%w: missing or non-string id", ErrInvalidEvent)
	}

	eventType := root.Get("eventType")
	if eventType.Type != gjson.String {
		return nil, fmt.Errorf("%w: missing or non-string eventType", ErrInvalidEvent)
	}

	// Some deliveries spell the envelope timestamp created_at.
	createdAt := root.Get("createdAt")
	if !createdAt.Exists() {
		createdAt = root.Get("created_at")
	}
	if createdAt.Type != gjson.Number {
		return nil, fmt.Errorf("%w: missing or non-numeric createdAt", ErrInvalidEvent)
	}

	object := root.Get("object")
	if !object.IsObject() {
		return nil, fmt.Errorf("%w: object is missing or not a JSON object", ErrInvalidEvent)
	}

	discriminator := object.Get("object")
	if discriminator.Type != gjson.String {
		return nil, fmt.Errorf("%w: object has no type discriminator", ErrInvalidEvent)
	}
	if !knownObject(discriminator.String()) {
		return nil, fmt.Errorf("%w: unrecognized object type %q", ErrInvalidEvent, discriminator.String())
	}

	return &Event{
		ID:         id.String(),
		Type:       EventType(eventType.String()),
		CreatedAt:  createdAt.Int(),
		ObjectType: discriminator.String(),
		Object:     json.RawMessage(object.Raw),
	}, nil
}
