package services

import (
	"context"
	"fmt"

	"venue-management-platform/internal/models"

	"github.com/google/uuid"
)

// CustomerRepository interface for customer lookups
type CustomerRepository interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// CatalogRepository interface for batch catalog resolution
type CatalogRepository interface {
	ResolveItems(ctx context.Context, category models.Category, ids []int) (map[int]*models.CatalogItem, error)
}

// CheckoutRepository interface for the atomic checkout commit
type CheckoutRepository interface {
	Commit(ctx context.Context, pending *models.PendingCheckout) error
}

// CheckoutService processes unified checkout requests: it validates and
// prices every cart line against the catalog, tracks merchandise stock
// across lines, and commits all resulting sale records atomically.
// The service holds no state between calls.
type CheckoutService struct {
	customerRepo CustomerRepository
	catalogRepo  CatalogRepository
	checkoutRepo CheckoutRepository
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	customerRepo CustomerRepository,
	catalogRepo CatalogRepository,
	checkoutRepo CheckoutRepository,
) *CheckoutService {
	return &CheckoutService{
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		checkoutRepo: checkoutRepo,
	}
}

// Checkout applies a heterogeneous cart for one customer as a single unit of
// work. It either commits one sale record per line plus the merchandise stock
// decrements, or leaves the store untouched and returns a typed error.
func (s *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Receipt, error) {
	lines, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify customer: %w", err)
	}
	if !exists {
		return nil, models.ErrCustomerNotFound
	}

	catalog, err := s.resolveCatalog(ctx, lines)
	if err != nil {
		return nil, err
	}

	paymentMethod := req.ResolvedPaymentMethod()
	purchasedAt := req.ResolvedPurchasedAt()

	pending := &models.PendingCheckout{
		Reference:       uuid.NewString(),
		StockDecrements: make(map[int]int),
	}
	stock := newStockLedger(catalog[models.CategoryMerchandise])

	receipt := &models.Receipt{
		Reference:     pending.Reference,
		CustomerID:    req.CustomerID,
		PaymentMethod: paymentMethod,
		PurchasedAt:   purchasedAt,
		Lines:         make([]models.ReceiptLine, 0, len(lines)),
	}

	// Lines are processed strictly in input order: later merchandise lines
	// are checked against the balance left by earlier ones.
	for _, line := range lines {
		item, ok := catalog[line.Category][line.ItemID]
		if !ok {
			return nil, &models.NotFoundError{
				Message: fmt.Sprintf("%s item %d not found", line.Category, line.ItemID),
			}
		}

		if item.Withdrawn {
			return nil, &models.ConflictError{
				Message: fmt.Sprintf("%s %q (id %d) has been withdrawn from sale", line.Category, item.Name, item.ID),
			}
		}

		if line.Category == models.CategoryMerchandise {
			if err := stock.take(item, line.Quantity); err != nil {
				return nil, err
			}
			pending.StockDecrements[item.ID] += line.Quantity
		}

		subtotal := item.Price * line.Quantity

		record := models.SaleRecord{
			Reference:     pending.Reference,
			CustomerID:    req.CustomerID,
			ItemID:        item.ID,
			Quantity:      line.Quantity,
			Subtotal:      subtotal,
			PaymentMethod: paymentMethod,
			PurchasedAt:   purchasedAt,
		}

		switch line.Category {
		case models.CategoryTicket:
			pending.TicketSales = append(pending.TicketSales, record)
		case models.CategoryFood:
			pending.FoodSales = append(pending.FoodSales, record)
		case models.CategoryMerchandise:
			pending.MerchandiseSales = append(pending.MerchandiseSales, record)
		}

		receipt.Lines = append(receipt.Lines, models.ReceiptLine{
			Category:  line.Category,
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
			Subtotal:  subtotal,
		})
		receipt.TotalAmount += subtotal
	}

	if err := s.checkoutRepo.Commit(ctx, pending); err != nil {
		return nil, &models.CommitError{Err: err}
	}

	return receipt, nil
}

// resolveCatalog batch-resolves the distinct item ids of each category
// present in the cart, with at most one catalog read per category
func (s *CheckoutService) resolveCatalog(ctx context.Context, lines []models.CartLine) (map[models.Category]map[int]*models.CatalogItem, error) {
	idsByCategory := make(map[models.Category][]int)
	seen := make(map[models.CartLine]bool)

	for _, line := range lines {
		key := models.CartLine{Category: line.Category, ItemID: line.ItemID}
		if seen[key] {
			continue
		}
		seen[key] = true
		idsByCategory[line.Category] = append(idsByCategory[line.Category], line.ItemID)
	}

	catalog := make(map[models.Category]map[int]*models.CatalogItem, len(idsByCategory))
	for category, ids := range idsByCategory {
		items, err := s.catalogRepo.ResolveItems(ctx, category, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s catalog items: %w", category, err)
		}
		catalog[category] = items
	}

	return catalog, nil
}

// stockLedger is the working copy of merchandise stock balances for one
// checkout call. All stock reads and decrements during validation go through
// it, so repeated lines for the same item are validated cumulatively.
type stockLedger map[int]int

func newStockLedger(items map[int]*models.CatalogItem) stockLedger {
	ledger := make(stockLedger, len(items))
	for id, item := range items {
		ledger[id] = item.Stock
	}
	return ledger
}

// take decrements the working balance for the item, failing without mutation
// if fewer than the requested quantity remain
func (l stockLedger) take(item *models.CatalogItem, quantity int) error {
	remaining := l[item.ID]
	if remaining < quantity {
		return &models.InsufficientStockError{
			ItemID:    item.ID,
			Name:      item.Name,
			Requested: quantity,
			Remaining: remaining,
		}
	}
	l[item.ID] = remaining - quantity
	return nil
}
