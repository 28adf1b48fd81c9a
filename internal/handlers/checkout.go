package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"venue-management-platform/internal/models"
	"venue-management-platform/internal/services"
)

// CheckoutHandler handles unified checkout requests
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout processes a shopping cart for one customer as a single atomic
// purchase transaction
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.checkoutService.Checkout(r.Context(), &req)
	if err != nil {
		status := checkoutErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("checkout failed for customer %d: %v", req.CustomerID, err)
			respondError(w, status, "checkout could not be completed")
			return
		}
		respondError(w, status, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, receipt)
}

// checkoutErrorStatus maps the checkout error taxonomy to HTTP statuses:
// malformed input, unknown customer/item, unsellable item, commit failure.
func checkoutErrorStatus(err error) int {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
		conflictErr   *models.ConflictError
		stockErr      *models.InsufficientStockError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr), errors.As(err, &stockErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
