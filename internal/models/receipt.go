package models

import "time"

// ReceiptLine summarizes one accepted cart line for the response
type ReceiptLine struct {
	Category  Category `json:"category"`
	ItemID    int      `json:"item_id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice int      `json:"unit_price"` // in cents
	Subtotal  int      `json:"subtotal"`   // in cents
}

// Receipt is the derived, non-persisted summary of a committed checkout
type Receipt struct {
	Reference     string        `json:"reference"`
	CustomerID    int           `json:"customer_id"`
	PaymentMethod string        `json:"payment_method"`
	PurchasedAt   time.Time     `json:"purchased_at"`
	TotalAmount   int           `json:"total_amount"` // in cents
	Lines         []ReceiptLine `json:"lines"`
}

// TotalInCurrency returns the total charged in the main currency as a float
func (r *Receipt) TotalInCurrency() float64 {
	return float64(r.TotalAmount) / 100.0
}
