package payloop

// Order records what was bought in a completed checkout. Orders are not
// addressable on their own: they arrive embedded in checkouts, refunds,
// and transactions.
type Order struct {
	ID       string `json:"id"`
	Object   string `json:"object"`
	Customer string `json:"customer"`
	Product  string `json:"product"`
	// Amount is in the minor unit of Currency.
	Amount   int64  `json:"amount"`
	Tax      int64  `json:"tax"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	// Type is "recurring" or "onetime".
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Mode      Mode   `json:"mode"`
}
