package handlers

import (
	"log"
	"net/http"

	"venue-management-platform/internal/services"
)

// CatalogHandler handles catalog listing requests
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListTicketTypes returns all ticket types currently on sale
func (h *CatalogHandler) ListTicketTypes(w http.ResponseWriter, r *http.Request) {
	ticketTypes, err := h.catalogService.ListTicketTypes(r.Context())
	if err != nil {
		log.Printf("failed to list ticket types: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list ticket types")
		return
	}
	respondJSON(w, http.StatusOK, ticketTypes)
}

// ListMenuItems returns all menu items currently on sale
func (h *CatalogHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	menuItems, err := h.catalogService.ListMenuItems(r.Context())
	if err != nil {
		log.Printf("failed to list menu items: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list menu items")
		return
	}
	respondJSON(w, http.StatusOK, menuItems)
}

// ListMerchandiseItems returns all merchandise items currently on sale
func (h *CatalogHandler) ListMerchandiseItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListMerchandiseItems(r.Context())
	if err != nil {
		log.Printf("failed to list merchandise items: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list merchandise items")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// HealthCheck reports service liveness
func (h *CatalogHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
