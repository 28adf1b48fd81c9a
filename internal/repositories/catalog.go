package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"venue-management-platform/internal/models"

	"github.com/lib/pq"
)

// CatalogRepository handles catalog read operations for all three categories
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ResolveItems batch-resolves the given item ids within one category to their
// current catalog state. One query per call; ids absent from the returned map
// were not found. Pure read, no ordering guarantee on the map.
func (r *CatalogRepository) ResolveItems(ctx context.Context, category models.Category, ids []int) (map[int]*models.CatalogItem, error) {
	if len(ids) == 0 {
		return map[int]*models.CatalogItem{}, nil
	}

	idArgs := make([]int64, len(ids))
	for i, id := range ids {
		idArgs[i] = int64(id)
	}

	var query string
	switch category {
	case models.CategoryTicket:
		query = `SELECT id, name, price, withdrawn, 0 FROM ticket_types WHERE id = ANY($1)`
	case models.CategoryFood:
		query = `SELECT id, name, price, withdrawn, 0 FROM menu_items WHERE id = ANY($1)`
	case models.CategoryMerchandise:
		query = `SELECT id, name, price, withdrawn, stock FROM merchandise_items WHERE id = ANY($1)`
	default:
		return nil, fmt.Errorf("unknown catalog category: %s", category)
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(idArgs))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s items: %w", category, err)
	}
	defer rows.Close()

	items := make(map[int]*models.CatalogItem, len(ids))
	for rows.Next() {
		item := &models.CatalogItem{Category: category}
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Withdrawn, &item.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan %s item: %w", category, err)
		}
		items[item.ID] = item
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s items: %w", category, err)
	}

	return items, nil
}

// ListTicketTypes retrieves all ticket types that are still on sale
func (r *CatalogRepository) ListTicketTypes(ctx context.Context) ([]*models.TicketType, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, withdrawn, created_at, updated_at
		FROM ticket_types
		WHERE withdrawn = FALSE
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	defer rows.Close()

	var ticketTypes []*models.TicketType
	for rows.Next() {
		tt := &models.TicketType{}
		err := rows.Scan(&tt.ID, &tt.Name, &tt.Description, &tt.Price, &tt.Withdrawn, &tt.CreatedAt, &tt.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket type: %w", err)
		}
		ticketTypes = append(ticketTypes, tt)
	}

	return ticketTypes, rows.Err()
}

// ListMenuItems retrieves all menu items that are still on sale
func (r *CatalogRepository) ListMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, withdrawn, created_at, updated_at
		FROM menu_items
		WHERE withdrawn = FALSE
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var menuItems []*models.MenuItem
	for rows.Next() {
		mi := &models.MenuItem{}
		err := rows.Scan(&mi.ID, &mi.Name, &mi.Description, &mi.Price, &mi.Withdrawn, &mi.CreatedAt, &mi.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		menuItems = append(menuItems, mi)
	}

	return menuItems, rows.Err()
}

// ListMerchandiseItems retrieves all merchandise items that are still on sale
func (r *CatalogRepository) ListMerchandiseItems(ctx context.Context) ([]*models.MerchandiseItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, stock, withdrawn, created_at, updated_at
		FROM merchandise_items
		WHERE withdrawn = FALSE
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list merchandise items: %w", err)
	}
	defer rows.Close()

	var items []*models.MerchandiseItem
	for rows.Next() {
		mi := &models.MerchandiseItem{}
		err := rows.Scan(&mi.ID, &mi.Name, &mi.Description, &mi.Price, &mi.Stock, &mi.Withdrawn, &mi.CreatedAt, &mi.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan merchandise item: %w", err)
		}
		items = append(items, mi)
	}

	return items, rows.Err()
}
