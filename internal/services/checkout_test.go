package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"venue-management-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository for testing
type MockCustomerRepository struct {
	customers map[int]bool
	err       error
}

func NewMockCustomerRepository(ids ...int) *MockCustomerRepository {
	customers := make(map[int]bool)
	for _, id := range ids {
		customers[id] = true
	}
	return &MockCustomerRepository{customers: customers}
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.customers[id], nil
}

// MockCatalogRepository for testing
type MockCatalogRepository struct {
	items map[models.Category]map[int]*models.CatalogItem
	calls map[models.Category]int
	err   error
}

func NewMockCatalogRepository(items ...*models.CatalogItem) *MockCatalogRepository {
	repo := &MockCatalogRepository{
		items: make(map[models.Category]map[int]*models.CatalogItem),
		calls: make(map[models.Category]int),
	}
	for _, item := range items {
		if repo.items[item.Category] == nil {
			repo.items[item.Category] = make(map[int]*models.CatalogItem)
		}
		repo.items[item.Category][item.ID] = item
	}
	return repo
}

func (m *MockCatalogRepository) ResolveItems(ctx context.Context, category models.Category, ids []int) (map[int]*models.CatalogItem, error) {
	m.calls[category]++
	if m.err != nil {
		return nil, m.err
	}

	resolved := make(map[int]*models.CatalogItem)
	for _, id := range ids {
		if item, ok := m.items[category][id]; ok {
			copied := *item
			resolved[id] = &copied
		}
	}
	return resolved, nil
}

// MockCheckoutRepository for testing
type MockCheckoutRepository struct {
	commits []*models.PendingCheckout
	err     error
}

func (m *MockCheckoutRepository) Commit(ctx context.Context, pending *models.PendingCheckout) error {
	if m.err != nil {
		return m.err
	}
	m.commits = append(m.commits, pending)
	return nil
}

func newTestService(customers *MockCustomerRepository, catalog *MockCatalogRepository, checkout *MockCheckoutRepository) *CheckoutService {
	return NewCheckoutService(customers, catalog, checkout)
}

func TestCheckoutService_TicketPurchase(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 5, Category: models.CategoryTicket, Name: "Day Pass", Price: 1000},
	)
	checkout := &MockCheckoutRepository{}
	service := newTestService(NewMockCustomerRepository(1), catalog, checkout)

	receipt, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "ticket", ItemID: 5, Quantity: 2},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, 2000, receipt.TotalAmount)
	assert.Equal(t, 20.0, receipt.TotalInCurrency())
	require.Len(t, receipt.Lines, 1)
	assert.Equal(t, models.CategoryTicket, receipt.Lines[0].Category)
	assert.Equal(t, "Day Pass", receipt.Lines[0].Name)
	assert.Equal(t, 1000, receipt.Lines[0].UnitPrice)

	require.Len(t, checkout.commits, 1)
	pending := checkout.commits[0]
	assert.Len(t, pending.TicketSales, 1)
	assert.Empty(t, pending.FoodSales)
	assert.Empty(t, pending.MerchandiseSales)
	assert.Empty(t, pending.StockDecrements)
	assert.Equal(t, receipt.Reference, pending.TicketSales[0].Reference)
	assert.Equal(t, 2000, pending.TicketSales[0].Subtotal)
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	checkout := &MockCheckoutRepository{}
	service := newTestService(NewMockCustomerRepository(1), NewMockCatalogRepository(), checkout)

	receipt, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items:      []models.CartLineRequest{},
	})

	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Empty(t, checkout.commits)
}

func TestCheckoutService_InvalidCustomerID(t *testing.T) {
	service := newTestService(NewMockCustomerRepository(), NewMockCatalogRepository(), &MockCheckoutRepository{})

	_, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 0,
		Items: []models.CartLineRequest{
			{Category: "ticket", ItemID: 1, Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, models.ErrInvalidCustomer)
}

func TestCheckoutService_UnknownCustomer(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 1, Category: models.CategoryTicket, Name: "Day Pass", Price: 1000},
	)
	service := newTestService(NewMockCustomerRepository(1), catalog, &MockCheckoutRepository{})

	_, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 42,
		Items: []models.CartLineRequest{
			{Category: "ticket", ItemID: 1, Quantity: 1},
		},
	})

	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
	// The cart must be rejected before any catalog read happens
	assert.Empty(t, catalog.calls)
}

func TestCheckoutService_UnsupportedCategory(t *testing.T) {
	catalog := NewMockCatalogRepository()
	service := newTestService(NewMockCustomerRepository(1), catalog, &MockCheckoutRepository{})

	_, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "parking", ItemID: 1, Quantity: 1},
		},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "parking")
	assert.Empty(t, catalog.calls)
}

func TestCheckoutService_UnknownItem(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 3, Category: models.CategoryFood, Name: "Veggie Wrap", Price: 950},
	)
	checkout := &MockCheckoutRepository{}
	service := newTestService(NewMockCustomerRepository(1), catalog, checkout)

	receipt, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "food", ItemID: 3, Quantity: 1},
			{Category: "ticket", ItemID: 999, Quantity: 1},
		},
	})

	assert.Nil(t, receipt)
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Message, "999")
	// The valid food line must not have been committed
	assert.Empty(t, checkout.commits)
}

func TestCheckoutService_WithdrawnItem(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 7, Category: models.CategoryMerchandise, Name: "Souvenir Mug", Price: 1100, Stock: 100, Withdrawn: true},
	)
	checkout := &MockCheckoutRepository{}
	service := newTestService(NewMockCustomerRepository(1), catalog, checkout)

	_, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "merchandise", ItemID: 7, Quantity: 1},
		},
	})

	// Withdrawn items are rejected regardless of stock level
	var conflictErr *models.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Contains(t, conflictErr.Message, "Souvenir Mug")
	assert.Empty(t, checkout.commits)
}

func TestCheckoutService_InsufficientStock(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 9, Category: models.CategoryMerchandise, Name: "Plush Mascot", Price: 1800, Stock: 2},
	)
	checkout := &MockCheckoutRepository{}
	service := newTestService(NewMockCustomerRepository(1), catalog, checkout)

	receipt, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "merchandise", ItemID: 9, Quantity: 3},
		},
	})

	assert.Nil(t, receipt)
	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 9, stockErr.ItemID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Remaining)
	assert.Empty(t, checkout.commits)
}

func TestCheckoutService_CumulativeStockAcrossLines(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 9, Category: models.CategoryMerchandise, Name: "Plush Mascot", Price: 1800, Stock: 1},
	)
	checkout := &MockCheckoutRepository{}
	service := newTestService(NewMockCustomerRepository(1), catalog, checkout)

	// Two lines for the same item: the second must be validated against the
	// balance left by the first, not the pre-request snapshot
	_, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "merchandise", ItemID: 9, Quantity: 1},
			{Category: "merchandise", ItemID: 9, Quantity: 1},
		},
	})

	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Requested)
	assert.Equal(t, 0, stockErr.Remaining)
	assert.Empty(t, checkout.commits)
}

func TestCheckoutService_MixedCart(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 5, Category: models.CategoryTicket, Name: "Day Pass", Price: 2500},
		&models.CatalogItem{ID: 3, Category: models.CategoryFood, Name: "Cheeseburger Combo", Price: 1200},
		&models.CatalogItem{ID: 9, Category: models.CategoryMerchandise, Name: "Venue T-Shirt", Price: 2000, Stock: 10},
	)
	checkout := &MockCheckoutRepository{}
	service := newTestService(NewMockCustomerRepository(7), catalog, checkout)

	receipt, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID:    7,
		PaymentMethod: "card",
		Items: []models.CartLineRequest{
			{Category: "Tickets", ItemID: 5, Quantity: 2},
			{Category: "menu", ItemID: 3, Quantity: 3},
			{Category: "merch", ItemID: 9, Quantity: 1},
			{Category: "merch", ItemID: 9, Quantity: 2},
		},
	})

	require.NoError(t, err)

	// Total charged equals the sum of per-line subtotals
	expectedTotal := 2*2500 + 3*1200 + 1*2000 + 2*2000
	assert.Equal(t, expectedTotal, receipt.TotalAmount)
	require.Len(t, receipt.Lines, 4)

	sum := 0
	for _, line := range receipt.Lines {
		assert.Equal(t, line.UnitPrice*line.Quantity, line.Subtotal)
		sum += line.Subtotal
	}
	assert.Equal(t, receipt.TotalAmount, sum)

	// Input order is preserved in the summary
	assert.Equal(t, models.CategoryTicket, receipt.Lines[0].Category)
	assert.Equal(t, models.CategoryFood, receipt.Lines[1].Category)
	assert.Equal(t, models.CategoryMerchandise, receipt.Lines[2].Category)

	// One sale record per accepted line, partitioned by ledger
	require.Len(t, checkout.commits, 1)
	pending := checkout.commits[0]
	assert.Len(t, pending.TicketSales, 1)
	assert.Len(t, pending.FoodSales, 1)
	assert.Len(t, pending.MerchandiseSales, 2)

	// Stock decrements are aggregated per merchandise item
	assert.Equal(t, map[int]int{9: 3}, pending.StockDecrements)

	// Every record of the checkout shares one reference
	assert.NotEmpty(t, receipt.Reference)
	for _, record := range pending.MerchandiseSales {
		assert.Equal(t, receipt.Reference, record.Reference)
		assert.Equal(t, "card", record.PaymentMethod)
	}
}

func TestCheckoutService_OneCatalogReadPerCategory(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 1, Category: models.CategoryTicket, Name: "Day Pass", Price: 2500},
		&models.CatalogItem{ID: 2, Category: models.CategoryTicket, Name: "Evening Pass", Price: 1500},
		&models.CatalogItem{ID: 9, Category: models.CategoryMerchandise, Name: "Venue T-Shirt", Price: 2000, Stock: 10},
	)
	service := newTestService(NewMockCustomerRepository(1), catalog, &MockCheckoutRepository{})

	_, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "ticket", ItemID: 1, Quantity: 1},
			{Category: "ticket", ItemID: 2, Quantity: 1},
			{Category: "merchandise", ItemID: 9, Quantity: 1},
			{Category: "ticket", ItemID: 1, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, catalog.calls[models.CategoryTicket])
	assert.Equal(t, 1, catalog.calls[models.CategoryMerchandise])
}

func TestCheckoutService_CommitFailure(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 5, Category: models.CategoryTicket, Name: "Day Pass", Price: 1000},
	)
	checkout := &MockCheckoutRepository{err: errors.New("connection reset")}
	service := newTestService(NewMockCustomerRepository(1), catalog, checkout)

	receipt, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "ticket", ItemID: 5, Quantity: 1},
		},
	})

	assert.Nil(t, receipt)
	var commitErr *models.CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Contains(t, commitErr.Error(), "connection reset")
}

func TestCheckoutService_Defaults(t *testing.T) {
	catalog := NewMockCatalogRepository(
		&models.CatalogItem{ID: 5, Category: models.CategoryTicket, Name: "Day Pass", Price: 1000},
	)
	checkout := &MockCheckoutRepository{}
	service := newTestService(NewMockCustomerRepository(1), catalog, checkout)

	before := time.Now().UTC()
	receipt, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "ticket", ItemID: 5, Quantity: 0}, // coerced to 1
		},
	})
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.Equal(t, models.DefaultPaymentMethod, receipt.PaymentMethod)
	assert.Equal(t, 1, receipt.Lines[0].Quantity)
	assert.Equal(t, 1000, receipt.TotalAmount)
	assert.Equal(t, time.UTC, receipt.PurchasedAt.Location())
	assert.False(t, receipt.PurchasedAt.Before(before))
	assert.False(t, receipt.PurchasedAt.After(after))
}

func TestCheckoutService_CustomerLookupFailure(t *testing.T) {
	customers := NewMockCustomerRepository(1)
	customers.err = fmt.Errorf("database unavailable")
	service := newTestService(customers, NewMockCatalogRepository(), &MockCheckoutRepository{})

	_, err := service.Checkout(context.Background(), &models.CheckoutRequest{
		CustomerID: 1,
		Items: []models.CartLineRequest{
			{Category: "ticket", ItemID: 5, Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to verify customer")
}
