package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutRequest_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		req       CheckoutRequest
		wantErr   string
		wantLines int
	}{
		{
			name: "valid mixed cart",
			req: CheckoutRequest{
				CustomerID: 1,
				Items: []CartLineRequest{
					{Category: "ticket", ItemID: 5, Quantity: 2},
					{Category: " Merch ", ItemID: 9, Quantity: 1},
				},
			},
			wantLines: 2,
		},
		{
			name:    "empty cart",
			req:     CheckoutRequest{CustomerID: 1},
			wantErr: "cart is empty",
		},
		{
			name: "non-positive customer id",
			req: CheckoutRequest{
				CustomerID: -3,
				Items:      []CartLineRequest{{Category: "ticket", ItemID: 1, Quantity: 1}},
			},
			wantErr: "customer id must be a positive integer",
		},
		{
			name: "missing category",
			req: CheckoutRequest{
				CustomerID: 1,
				Items: []CartLineRequest{
					{Category: "ticket", ItemID: 1, Quantity: 1},
					{Category: "   ", ItemID: 2, Quantity: 1},
				},
			},
			wantErr: "line 2: category is required",
		},
		{
			name: "unsupported category",
			req: CheckoutRequest{
				CustomerID: 1,
				Items:      []CartLineRequest{{Category: "parking", ItemID: 1, Quantity: 1}},
			},
			wantErr: `line 1: unsupported category "parking"`,
		},
		{
			name: "non-positive item id",
			req: CheckoutRequest{
				CustomerID: 1,
				Items:      []CartLineRequest{{Category: "food", ItemID: 0, Quantity: 1}},
			},
			wantErr: "line 1: item id must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := tt.req.Normalize()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Nil(t, lines)
				return
			}
			require.NoError(t, err)
			assert.Len(t, lines, tt.wantLines)
		})
	}
}

func TestCheckoutRequest_Normalize_PreservesOrderAndCoercesQuantity(t *testing.T) {
	req := CheckoutRequest{
		CustomerID: 1,
		Items: []CartLineRequest{
			{Category: "merch", ItemID: 9, Quantity: -2},
			{Category: "tickets", ItemID: 5, Quantity: 3},
			{Category: "menu", ItemID: 3, Quantity: 0},
		},
	}

	lines, err := req.Normalize()
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, CartLine{Category: CategoryMerchandise, ItemID: 9, Quantity: 1}, lines[0])
	assert.Equal(t, CartLine{Category: CategoryTicket, ItemID: 5, Quantity: 3}, lines[1])
	assert.Equal(t, CartLine{Category: CategoryFood, ItemID: 3, Quantity: 1}, lines[2])
}

func TestCheckoutRequest_ResolvedPaymentMethod(t *testing.T) {
	assert.Equal(t, DefaultPaymentMethod, (&CheckoutRequest{}).ResolvedPaymentMethod())
	assert.Equal(t, DefaultPaymentMethod, (&CheckoutRequest{PaymentMethod: "   "}).ResolvedPaymentMethod())
	assert.Equal(t, "card", (&CheckoutRequest{PaymentMethod: " card "}).ResolvedPaymentMethod())
}

func TestCheckoutRequest_ResolvedPurchasedAt(t *testing.T) {
	// Absent timestamp defaults to now in UTC
	resolved := (&CheckoutRequest{}).ResolvedPurchasedAt()
	assert.Equal(t, time.UTC, resolved.Location())
	assert.WithinDuration(t, time.Now().UTC(), resolved, 2*time.Second)

	// Supplied timestamps are normalized to UTC
	nairobi := time.FixedZone("EAT", 3*60*60)
	supplied := time.Date(2025, 6, 1, 15, 30, 0, 0, nairobi)
	req := &CheckoutRequest{PurchasedAt: &supplied}
	resolved = req.ResolvedPurchasedAt()
	assert.Equal(t, time.UTC, resolved.Location())
	assert.True(t, resolved.Equal(supplied))
}
