package models

import "time"

// SaleRecord represents one accepted cart line, persisted to the ledger of
// its category. Immutable once written.
type SaleRecord struct {
	ID            int       `json:"id" db:"id"`
	Reference     string    `json:"reference" db:"reference"`
	CustomerID    int       `json:"customer_id" db:"customer_id"`
	ItemID        int       `json:"item_id"`
	Quantity      int       `json:"quantity" db:"quantity"`
	Subtotal      int       `json:"subtotal" db:"subtotal"` // in cents
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	PurchasedAt   time.Time `json:"purchased_at" db:"purchased_at"`
}

// PendingCheckout holds a fully validated checkout ready for the atomic
// commit: sale records partitioned by category ledger plus the merchandise
// stock decrements accumulated during validation.
type PendingCheckout struct {
	Reference        string
	TicketSales      []SaleRecord
	FoodSales        []SaleRecord
	MerchandiseSales []SaleRecord
	StockDecrements  map[int]int // merchandise item id -> total quantity sold
}

// LineCount returns the number of sale records across all ledgers
func (p *PendingCheckout) LineCount() int {
	return len(p.TicketSales) + len(p.FoodSales) + len(p.MerchandiseSales)
}
