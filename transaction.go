package payloop

import "context"

// Transaction is one movement of money: a charge, a subscription renewal,
// or an adjustment. Amounts are in the minor unit of Currency.
type Transaction struct {
	ID             string `json:"id"`
	Object         string `json:"object"`
	Amount         int64  `json:"amount"`
	AmountPaid     int64  `json:"amountPaid"`
	DiscountAmount int64  `json:"discountAmount"`
	TaxAmount      int64  `json:"taxAmount"`
	TaxCountry     string `json:"taxCountry"`
	Currency       string `json:"currency"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	RefundedAmount int64  `json:"refundedAmount"`
	Description    string `json:"description"`

	Order        *Order        `json:"order"`
	Subscription *Subscription `json:"subscription"`
	Customer     *Customer     `json:"customer"`

	// PeriodStart, PeriodEnd, and CreatedAt are the provider's raw integer
	// timestamps.
	PeriodStart int64 `json:"periodStart"`
	PeriodEnd   int64 `json:"periodEnd"`
	CreatedAt   int64 `json:"createdAt"`
	Mode        Mode  `json:"mode"`
}

// ListTransactionsParams narrows a transaction search. All filters are
// optional and combine.
type ListTransactionsParams struct {
	CustomerID string
	OrderID    string
	ProductID  string
	ListParams
}

// ListTransactions returns one page of transactions matching params,
// newest first.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) (*List[Transaction], error) {
	q := params.values()
	if params.CustomerID != "" {
		q.Set("customer_id", params.CustomerID)
	}
	if params.OrderID != "" {
		q.Set("order_id", params.OrderID)
	}
	if params.ProductID != "" {
		q.Set("product_id", params.ProductID)
	}

	var out List[Transaction]
	if err := c.get(ctx, "/transactions/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
