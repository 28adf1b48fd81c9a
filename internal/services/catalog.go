package services

import (
	"context"

	"venue-management-platform/internal/models"
)

// CatalogLister interface for catalog listing operations
type CatalogLister interface {
	ListTicketTypes(ctx context.Context) ([]*models.TicketType, error)
	ListMenuItems(ctx context.Context) ([]*models.MenuItem, error)
	ListMerchandiseItems(ctx context.Context) ([]*models.MerchandiseItem, error)
}

// CatalogService exposes read access to the sales catalog
type CatalogService struct {
	catalogRepo CatalogLister
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo CatalogLister) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListTicketTypes returns all ticket types currently on sale
func (s *CatalogService) ListTicketTypes(ctx context.Context) ([]*models.TicketType, error) {
	return s.catalogRepo.ListTicketTypes(ctx)
}

// ListMenuItems returns all menu items currently on sale
func (s *CatalogService) ListMenuItems(ctx context.Context) ([]*models.MenuItem, error) {
	return s.catalogRepo.ListMenuItems(ctx)
}

// ListMerchandiseItems returns all merchandise items currently on sale
func (s *CatalogService) ListMerchandiseItems(ctx context.Context) ([]*models.MerchandiseItem, error) {
	return s.catalogRepo.ListMerchandiseItems(ctx)
}
