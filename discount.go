package payloop

import (
	"context"
	"net/url"
)

// Discount is a coupon code that reduces the price of a checkout.
type Discount struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Status string `json:"status"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	// Type is "percentage" or "fixed".
	Type string `json:"type"`
	// Amount is set for fixed discounts, in the minor unit of Currency.
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	// Percentage is set for percentage discounts.
	Percentage     float64 `json:"percentage"`
	ExpiryDate     string  `json:"expiryDate"`
	MaxRedemptions int     `json:"maxRedemptions"`
	// Duration is "forever", "once", or "repeating".
	Duration          string   `json:"duration"`
	DurationInMonths  int      `json:"durationInMonths"`
	AppliesToProducts []string `json:"appliesToProducts"`
	Mode              Mode     `json:"mode"`
}

// CreateDiscountParams describes a discount to create. When Code is empty
// Payloop generates one.
type CreateDiscountParams struct {
	Name              string   `json:"name"`
	Code              string   `json:"code,omitempty"`
	Type              string   `json:"type"`
	Amount            int64    `json:"amount,omitempty"`
	Currency          string   `json:"currency,omitempty"`
	Percentage        float64  `json:"percentage,omitempty"`
	ExpiryDate        string   `json:"expiry_date,omitempty"`
	MaxRedemptions    int      `json:"max_redemptions,omitempty"`
	Duration          string   `json:"duration,omitempty"`
	DurationInMonths  int      `json:"duration_in_months,omitempty"`
	AppliesToProducts []string `json:"applies_to_products,omitempty"`
}

// CreateDiscount creates a discount.
func (c *Client) CreateDiscount(ctx context.Context, params *CreateDiscountParams) (*Discount, error) {
	var out Discount
	if err := c.post(ctx, "/discounts", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDiscount fetches a discount by id.
func (c *Client) GetDiscount(ctx context.Context, id string) (*Discount, error) {
	var out Discount
	if err := c.get(ctx, "/discounts", url.Values{"discount_id": {id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDiscount deletes a discount. Checkouts that already redeemed it
// keep their price.
func (c *Client) DeleteDiscount(ctx context.Context, id string) error {
	return c.del(ctx, "/discounts/"+id)
}
