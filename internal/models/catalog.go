package models

import (
	"strings"
	"time"
)

// Category identifies which catalog and sales ledger a cart line uses
type Category string

const (
	CategoryTicket      Category = "ticket"
	CategoryFood        Category = "food"
	CategoryMerchandise Category = "merchandise"
)

// categorySynonyms maps accepted category labels to their canonical category.
// Labels are matched after lowercasing and trimming.
var categorySynonyms = map[string]Category{
	"ticket":      CategoryTicket,
	"tickets":     CategoryTicket,
	"pass":        CategoryTicket,
	"admission":   CategoryTicket,
	"food":        CategoryFood,
	"menu":        CategoryFood,
	"meal":        CategoryFood,
	"dining":      CategoryFood,
	"snack":       CategoryFood,
	"merchandise": CategoryMerchandise,
	"merch":       CategoryMerchandise,
	"souvenir":    CategoryMerchandise,
	"goods":       CategoryMerchandise,
	"gift":        CategoryMerchandise,
}

// ParseCategory resolves a raw category label to its canonical category.
// The label is lowercased and trimmed before matching.
func ParseCategory(label string) (Category, bool) {
	category, ok := categorySynonyms[strings.ToLower(strings.TrimSpace(label))]
	return category, ok
}

// IsValid returns true if the category is one of the canonical categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryTicket, CategoryFood, CategoryMerchandise:
		return true
	default:
		return false
	}
}

// CatalogItem is the resolved view of a purchasable catalog entry used by the
// checkout engine. Stock is meaningful for merchandise only.
type CatalogItem struct {
	ID        int
	Category  Category
	Name      string
	Price     int // in cents
	Withdrawn bool
	Stock     int
}

// TicketType represents an admission ticket type in the catalog
type TicketType struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       int       `json:"price" db:"price"` // in cents
	Withdrawn   bool      `json:"withdrawn" db:"withdrawn"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// MenuItem represents a food or drink item in the dining catalog
type MenuItem struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       int       `json:"price" db:"price"` // in cents
	Withdrawn   bool      `json:"withdrawn" db:"withdrawn"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// MerchandiseItem represents a stocked merchandise item in the catalog
type MerchandiseItem struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       int       `json:"price" db:"price"` // in cents
	Stock       int       `json:"stock" db:"stock"`
	Withdrawn   bool      `json:"withdrawn" db:"withdrawn"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PriceInCurrency returns the ticket price in the main currency as a float
func (t *TicketType) PriceInCurrency() float64 {
	return float64(t.Price) / 100.0
}

// PriceInCurrency returns the menu item price in the main currency as a float
func (m *MenuItem) PriceInCurrency() float64 {
	return float64(m.Price) / 100.0
}

// PriceInCurrency returns the merchandise price in the main currency as a float
func (m *MerchandiseItem) PriceInCurrency() float64 {
	return float64(m.Price) / 100.0
}

// InStock returns true if at least the requested quantity remains
func (m *MerchandiseItem) InStock(quantity int) bool {
	return m.Stock >= quantity
}
