package payloop

import (
	"context"
	"net/url"
)

// Product is something that can be sold through a checkout session: a
// one-time purchase or a recurring subscription plan.
type Product struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	// Price is in the minor unit of Currency, e.g. cents for USD.
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
	// BillingType is "recurring" or "onetime".
	BillingType string `json:"billingType"`
	// BillingPeriod is set for recurring products, e.g. "every-month".
	BillingPeriod     string `json:"billingPeriod"`
	Status            string `json:"status"`
	TaxMode           string `json:"taxMode"`
	TaxCategory       string `json:"taxCategory"`
	DefaultSuccessURL string `json:"defaultSuccessUrl"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
	Mode              Mode   `json:"mode"`
}

// CreateProductParams describes a product to create.
type CreateProductParams struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	ImageURL          string `json:"image_url,omitempty"`
	Price             int64  `json:"price"`
	Currency          string `json:"currency"`
	BillingType       string `json:"billing_type"`
	BillingPeriod     string `json:"billing_period,omitempty"`
	TaxMode           string `json:"tax_mode,omitempty"`
	TaxCategory       string `json:"tax_category,omitempty"`
	DefaultSuccessURL string `json:"default_success_url,omitempty"`
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, params *CreateProductParams) (*Product, error) {
	var out Product
	if err := c.post(ctx, "/products", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct fetches a product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := c.get(ctx, "/products", url.Values{"product_id": {id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProducts returns one page of products.
func (c *Client) ListProducts(ctx context.Context, params ListParams) (*List[Product], error) {
	var out List[Product]
	if err := c.get(ctx, "/products/search", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
