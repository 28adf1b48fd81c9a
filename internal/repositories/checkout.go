package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"venue-management-platform/internal/models"
)

// CheckoutRepository persists validated checkouts across the category sales
// ledgers and the merchandise stock balances as one atomic unit
type CheckoutRepository struct {
	db *sql.DB
}

// NewCheckoutRepository creates a new checkout repository
func NewCheckoutRepository(db *sql.DB) *CheckoutRepository {
	return &CheckoutRepository{db: db}
}

// Commit writes every sale record and stock decrement of a validated checkout
// in a single transaction. Any failure rolls back all writes; a concurrent
// stock change that would drive a balance negative aborts the transaction
// instead of overselling. Cancelling the context aborts the transaction.
func (r *CheckoutRepository) Commit(ctx context.Context, pending *models.PendingCheckout) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertSales(ctx, tx, "ticket_sales", "ticket_type_id", pending.TicketSales); err != nil {
		return err
	}
	if err := insertSales(ctx, tx, "food_sales", "menu_item_id", pending.FoodSales); err != nil {
		return err
	}
	if err := insertSales(ctx, tx, "merchandise_sales", "merchandise_item_id", pending.MerchandiseSales); err != nil {
		return err
	}

	if err := applyStockDecrements(ctx, tx, pending.StockDecrements); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checkout: %w", err)
	}

	return nil
}

func insertSales(ctx context.Context, tx *sql.Tx, table, itemColumn string, sales []models.SaleRecord) error {
	if len(sales) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (reference, customer_id, %s, quantity, subtotal, payment_method, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, table, itemColumn)

	for _, sale := range sales {
		_, err := tx.ExecContext(ctx, query,
			sale.Reference,
			sale.CustomerID,
			sale.ItemID,
			sale.Quantity,
			sale.Subtotal,
			sale.PaymentMethod,
			sale.PurchasedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert %s record: %w", table, err)
		}
	}

	return nil
}

func applyStockDecrements(ctx context.Context, tx *sql.Tx, decrements map[int]int) error {
	if len(decrements) == 0 {
		return nil
	}

	// Update in ascending id order so concurrent commits lock rows consistently
	ids := make([]int, 0, len(decrements))
	for id := range decrements {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		quantity := decrements[id]

		result, err := tx.ExecContext(ctx, `
			UPDATE merchandise_items
			SET stock = stock - $2, updated_at = NOW()
			WHERE id = $1 AND stock >= $2`,
			id, quantity)
		if err != nil {
			return fmt.Errorf("failed to update stock for merchandise item %d: %w", id, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("stock conflict for merchandise item %d: concurrent update left fewer than %d remaining", id, quantity)
		}
	}

	return nil
}
