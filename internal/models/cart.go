package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPaymentMethod is used when the request omits a payment method label
const DefaultPaymentMethod = "cash"

// CartLineRequest represents one raw line of a checkout request
type CartLineRequest struct {
	Category string `json:"category"`
	ItemID   int    `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CheckoutRequest represents a unified checkout request for one customer
type CheckoutRequest struct {
	CustomerID    int               `json:"customer_id"`
	PaymentMethod string            `json:"payment_method"`
	PurchasedAt   *time.Time        `json:"purchased_at"`
	Items         []CartLineRequest `json:"items"`
}

// CartLine is a normalized cart line with its category resolved. It exists
// only for the duration of one checkout call.
type CartLine struct {
	Category Category
	ItemID   int
	Quantity int
}

// Normalize validates the request structure and produces the normalized line
// list, preserving input order. Category labels are resolved to their
// canonical category here so the validation path never re-parses strings.
func (req *CheckoutRequest) Normalize() ([]CartLine, error) {
	if req.CustomerID <= 0 {
		return nil, ErrInvalidCustomer
	}

	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]CartLine, 0, len(req.Items))
	for i, item := range req.Items {
		label := strings.TrimSpace(item.Category)
		if label == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("line %d: category is required", i+1)}
		}

		category, ok := ParseCategory(label)
		if !ok {
			return nil, &ValidationError{Message: fmt.Sprintf("line %d: unsupported category %q", i+1, label)}
		}

		if item.ItemID <= 0 {
			return nil, &ValidationError{Message: fmt.Sprintf("line %d: item id must be a positive integer", i+1)}
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		lines = append(lines, CartLine{
			Category: category,
			ItemID:   item.ItemID,
			Quantity: quantity,
		})
	}

	return lines, nil
}

// ResolvedPaymentMethod returns the payment method label to record, falling
// back to the default when absent or blank
func (req *CheckoutRequest) ResolvedPaymentMethod() string {
	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		return DefaultPaymentMethod
	}
	return method
}

// ResolvedPurchasedAt returns the purchase timestamp to record, normalized to
// UTC, defaulting to the current time when absent
func (req *CheckoutRequest) ResolvedPurchasedAt() time.Time {
	if req.PurchasedAt == nil || req.PurchasedAt.IsZero() {
		return time.Now().UTC()
	}
	return req.PurchasedAt.UTC()
}
