package handler

import (
	"errors"
	"net/http"

	"github.com/Rrens/kopiloka/internal/api/middleware"
	"github.com/Rrens/kopiloka/internal/api/response"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SellerHandler handles the seller dashboard
type SellerHandler struct {
	sellerService *service.SellerService
	authService   *service.AuthService
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(sellerService *service.SellerService, authService *service.AuthService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService, authService: authService}
}

// List returns the seller's listings
func (h *SellerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	listings, err := h.sellerService.List(r.Context(), userID)
	if err != nil {
		sellerError(w, err)
		return
	}
	response.OK(w, listings)
}

// Create adds a listing
func (h *SellerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ListingInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	seller, ok := h.currentSeller(w, r)
	if !ok {
		return
	}

	product, err := h.sellerService.Create(r.Context(), *seller, input)
	if err != nil {
		sellerError(w, err)
		return
	}
	response.Created(w, product)
}

// Update edits a listing
func (h *SellerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.ListingInput
	if !decodeAndValidate(w, r, &input) {
		return
	}

	seller, ok := h.currentSeller(w, r)
	if !ok {
		return
	}

	product, err := h.sellerService.Update(r.Context(), *seller, chi.URLParam(r, "id"), input)
	if err != nil {
		sellerError(w, err)
		return
	}
	response.OK(w, product)
}

// Delete removes a listing
func (h *SellerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	if err := h.sellerService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		sellerError(w, err)
		return
	}
	response.NoContent(w)
}

// Stats returns the dashboard figures
func (h *SellerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	stats, err := h.sellerService.Stats(r.Context(), userID)
	if err != nil {
		sellerError(w, err)
		return
	}
	response.OK(w, stats)
}

func (h *SellerHandler) currentSeller(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	userID, _ := middleware.GetUserID(r.Context())

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(w, "user not found")
			return nil, false
		}
		sellerError(w, err)
		return nil, false
	}
	return user, true
}

func sellerError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrListingNotFound) {
		response.NotFound(w, err.Error())
		return
	}
	log.Error().Err(err).Msg("seller operation failed")
	response.InternalError(w, "seller operation failed")
}
