package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bjaus/payloop"
)

// route invokes the handlers registered for ev. The switch is exhaustive
// over the closed event-type set; anything else lands in the default arm
// and is tolerated.
func (w *Webhook) route(ctx context.Context, ev *Event, obj any, h Handlers) error {
	switch ev.Type {
	case EventCheckoutCompleted:
		if h.OnCheckoutCompleted == nil {
			return nil
		}
		e := CheckoutEvent{EventHeader: ev.header()}
		if err := decodeEntity(obj, &e.Checkout); err != nil {
			return err
		}
		return h.OnCheckoutCompleted(ctx, e)

	case EventRefundCreated:
		if h.OnRefundCreated == nil {
			return nil
		}
		e := RefundEvent{EventHeader: ev.header()}
		if err := decodeEntity(obj, &e.Refund); err != nil {
			return err
		}
		return h.OnRefundCreated(ctx, e)

	case EventDisputeCreated:
		if h.OnDisputeCreated == nil {
			return nil
		}
		e := DisputeEvent{EventHeader: ev.header()}
		if err := decodeEntity(obj, &e.Dispute); err != nil {
			return err
		}
		return h.OnDisputeCreated(ctx, e)

	case EventSubscriptionActive:
		return w.subscription(ctx, ev, obj, grantStep(h.OnGrantAccess, GrantSubscriptionActive), h.OnSubscriptionActive)

	case EventSubscriptionTrialing:
		return w.subscription(ctx, ev, obj, grantStep(h.OnGrantAccess, GrantSubscriptionTrialing), h.OnSubscriptionTrialing)

	case EventSubscriptionPaid:
		return w.subscription(ctx, ev, obj, grantStep(h.OnGrantAccess, GrantSubscriptionPaid), h.OnSubscriptionPaid)

	case EventSubscriptionPaused:
		return w.subscription(ctx, ev, obj, revokeStep(h.OnRevokeAccess, RevokeSubscriptionPaused), h.OnSubscriptionPaused)

	case EventSubscriptionExpired:
		return w.subscription(ctx, ev, obj, revokeStep(h.OnRevokeAccess, RevokeSubscriptionExpired), h.OnSubscriptionExpired)

	case EventSubscriptionCanceled:
		return w.subscription(ctx, ev, obj, nil, h.OnSubscriptionCanceled)

	case EventSubscriptionUnpaid:
		return w.subscription(ctx, ev, obj, nil, h.OnSubscriptionUnpaid)

	case EventSubscriptionUpdate:
		return w.subscription(ctx, ev, obj, nil, h.OnSubscriptionUpdate)

	case EventSubscriptionPastDue:
		return w.subscription(ctx, ev, obj, nil, h.OnSubscriptionPastDue)

	case EventSubscriptionScheduledCancel:
		return w.subscription(ctx, ev, obj, nil, h.OnSubscriptionScheduledCancel)

	default:
		if w.onUnknown != nil {
			w.onUnknown(ctx, string(ev.Type))
			return nil
		}
		w.logger.WarnContext(ctx, "ignoring unknown webhook event type", slog.String("event_type", string(ev.Type)))
		return nil
	}
}

// accessStep is one row's access-control callback with its reason already
// bound, or nil when the caller registered none.
type accessStep func(ctx context.Context, sub payloop.Subscription) error

func grantStep(fn func(context.Context, GrantAccessEvent) error, reason GrantReason) accessStep {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, sub payloop.Subscription) error {
		return fn(ctx, GrantAccessEvent{Reason: reason, Subscription: sub})
	}
}

func revokeStep(fn func(context.Context, RevokeAccessEvent) error, reason RevokeReason) accessStep {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, sub payloop.Subscription) error {
		return fn(ctx, RevokeAccessEvent{Reason: reason, Subscription: sub})
	}
}

// subscription runs one subscription lifecycle row: the access-control step
// first, to completion, then the row's specific handler. An error from the
// access-control step suppresses the specific handler.
func (w *Webhook) subscription(ctx context.Context, ev *Event, obj any, pre accessStep, fn func(context.Context, SubscriptionEvent) error) error {
	if pre == nil && fn == nil {
		return nil
	}

	var sub payloop.Subscription
	if err := decodeEntity(obj, &sub); err != nil {
		return err
	}

	if pre != nil {
		if err := pre(ctx, sub); err != nil {
			return err
		}
	}
	if fn == nil {
		return nil
	}
	return fn(ctx, SubscriptionEvent{EventHeader: ev.header(), Subscription: sub})
}

// decodeEntity types the normalized object for one handler invocation.
func decodeEntity(obj, v any) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: object does not decode as %T", ErrInvalidEvent, v)
	}
	return nil
}
