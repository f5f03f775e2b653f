package payloop

// Refund is money returned to a customer for an earlier transaction.
// Refunds arrive through the refund.created webhook event; they have no
// read endpoint of their own.
type Refund struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Status string `json:"status"`
	// RefundAmount is in the minor unit of RefundCurrency.
	RefundAmount   int64  `json:"refundAmount"`
	RefundCurrency string `json:"refundCurrency"`
	Reason         string `json:"reason"`

	Transaction  *Transaction  `json:"transaction"`
	Subscription *Subscription `json:"subscription"`
	Checkout     *Checkout     `json:"checkout"`
	Order        *Order        `json:"order"`
	Customer     *Customer     `json:"customer"`

	// CreatedAt is the provider's raw integer timestamp.
	CreatedAt int64 `json:"createdAt"`
	Mode      Mode  `json:"mode"`
}
