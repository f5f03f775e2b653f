package payloop

import (
	"context"
	"net/url"
)

// Customer is a person or business that bought something through Payloop.
type Customer struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Mode      Mode   `json:"mode"`
}

// GetCustomer fetches a customer by id.
func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var out Customer
	if err := c.get(ctx, "/customers", url.Values{"customer_id": {id}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCustomerByEmail fetches a customer by email address.
func (c *Client) GetCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	var out Customer
	if err := c.get(ctx, "/customers", url.Values{"email": {email}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCustomers returns one page of customers, newest first.
func (c *Client) ListCustomers(ctx context.Context, params ListParams) (*List[Customer], error) {
	var out List[Customer]
	if err := c.get(ctx, "/customers/search", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
