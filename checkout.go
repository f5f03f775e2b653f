package payloop

import (
	"context"
	"net/url"
)

// Checkout is a hosted checkout session. Payloop redirects the customer to
// CheckoutURL and reports the result both on the session itself and through
// the checkout.completed webhook event.
type Checkout struct {
	ID           string         `json:"id"`
	Object       string         `json:"object"`
	Status       string         `json:"status"`
	RequestID    string         `json:"requestId"`
	Product      *Product       `json:"product"`
	Units        int            `json:"units"`
	Order        *Order         `json:"order"`
	Subscription *Subscription  `json:"subscription"`
	Customer     *Customer      `json:"customer"`
	CustomFields []CustomField  `json:"customFields"`
	CheckoutURL  string         `json:"checkoutUrl"`
	SuccessURL   string         `json:"successUrl"`
	Metadata     map[string]any `json:"metadata"`
	Mode         Mode           `json:"mode"`
}

// CreateCheckoutParams describes a checkout session to create. ProductID is
// required; everything else is optional.
type CreateCheckoutParams struct {
	ProductID string `json:"product_id"`
	// RequestID is an identifier of the caller's choosing, echoed back on
	// the session and on the checkout.completed event.
	RequestID    string                  `json:"request_id,omitempty"`
	Units        int                     `json:"units,omitempty"`
	DiscountCode string                  `json:"discount_code,omitempty"`
	Customer     *CheckoutCustomerParams `json:"customer,omitempty"`
	SuccessURL   string                  `json:"success_url,omitempty"`
	Metadata     map[string]any          `json:"metadata,omitempty"`
}

// CheckoutCustomerParams pre-fills the customer on a checkout session.
type CheckoutCustomerParams struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

// CreateCheckout creates a hosted checkout session.
func (c *Client) CreateCheckout(ctx context.Context, params *CreateCheckoutParams) (*Checkout, error) {
	var out Checkout
	if err := c.post(ctx, "/checkouts", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCheckout fetches a checkout session by id.
func (c *Client) GetCheckout(ctx context.Context, id string) (*Checkout, error) {
	var out Checkout
	if err := c.get(ctx, "/checkouts", url.Values{"checkout_id": {id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
