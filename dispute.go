package payloop

// Dispute is a chargeback opened by the customer's payment provider
// against an earlier transaction. Disputes arrive through the
// dispute.created webhook event.
type Dispute struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Status string `json:"status"`
	// Amount is in the minor unit of Currency.
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`

	Transaction  *Transaction  `json:"transaction"`
	Subscription *Subscription `json:"subscription"`
	Checkout     *Checkout     `json:"checkout"`
	Order        *Order        `json:"order"`
	Customer     *Customer     `json:"customer"`

	// CreatedAt is the provider's raw integer timestamp.
	CreatedAt int64 `json:"createdAt"`
	Mode      Mode  `json:"mode"`
}
