package payloop

import (
	"context"
	"net/url"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionTrialing   SubscriptionStatus = "trialing"
	SubscriptionPaused     SubscriptionStatus = "paused"
	SubscriptionCanceled   SubscriptionStatus = "canceled"
	SubscriptionUnpaid     SubscriptionStatus = "unpaid"
	SubscriptionPastDue    SubscriptionStatus = "past_due"
	SubscriptionExpired    SubscriptionStatus = "expired"
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
)

// Subscription is a recurring purchase of a product. In webhook payloads
// the product and customer relations arrive fully expanded.
type Subscription struct {
	ID               string             `json:"id"`
	Object           string             `json:"object"`
	Product          *Product           `json:"product"`
	Customer         *Customer          `json:"customer"`
	Items            []SubscriptionItem `json:"items"`
	CollectionMethod string             `json:"collectionMethod"`
	Status           SubscriptionStatus `json:"status"`

	LastTransactionID   string `json:"lastTransactionId"`
	LastTransactionDate string `json:"lastTransactionDate"`
	NextTransactionDate string `json:"nextTransactionDate"`

	CurrentPeriodStartDate string `json:"currentPeriodStartDate"`
	CurrentPeriodEndDate   string `json:"currentPeriodEndDate"`
	CanceledAt             string `json:"canceledAt"`
	CreatedAt              string `json:"createdAt"`
	UpdatedAt              string `json:"updatedAt"`

	Metadata map[string]any `json:"metadata"`
	Mode     Mode           `json:"mode"`
}

// SubscriptionItem is one priced line of a subscription.
type SubscriptionItem struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	ProductID string `json:"productId"`
	PriceID   string `json:"priceId"`
	Units     int    `json:"units"`
}

// UpdateSubscriptionParams changes a subscription in place.
type UpdateSubscriptionParams struct {
	Items []UpdateSubscriptionItemParams `json:"items,omitempty"`
	// UpdateBehavior is "proration-charge-immediately", "proration-charge",
	// or "proration-none".
	UpdateBehavior string `json:"update_behavior,omitempty"`
}

// UpdateSubscriptionItemParams adjusts one line of a subscription.
type UpdateSubscriptionItemParams struct {
	ID    string `json:"id"`
	Units int    `json:"units,omitempty"`
}

// GetSubscription fetches a subscription by id.
func (c *Client) GetSubscription(ctx context.Context, id string) (*Subscription, error) {
	var out Subscription
	if err := c.get(ctx, "/subscriptions", url.Values{"subscription_id": {id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSubscription changes a subscription's items or proration behavior.
func (c *Client) UpdateSubscription(ctx context.Context, id string, params *UpdateSubscriptionParams) (*Subscription, error) {
	var out Subscription
	if err := c.post(ctx, "/subscriptions/"+id, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSubscription cancels a subscription at the end of the current
// period. Payloop reports the transition through subscription.canceled and
// later subscription.expired webhook events.
func (c *Client) CancelSubscription(ctx context.Context, id string) (*Subscription, error) {
	var out Subscription
	if err := c.post(ctx, "/subscriptions/"+id+"/cancel", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
