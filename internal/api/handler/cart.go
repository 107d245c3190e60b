package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rrens/kopiloka/internal/api/middleware"
	"github.com/Rrens/kopiloka/internal/api/response"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// CartHandler handles the session cart
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the cart with totals
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	cart, err := h.cartService.Get(r.Context(), sessionID)
	if err != nil {
		cartError(w, err)
		return
	}
	response.OK(w, cart.View())
}

// AddItem adds a product to the cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var input domain.CartItemInput
	if !decodeAndValidate(w, r, &input) {
		return
	}
	sessionID, _ := middleware.GetSessionID(r.Context())

	cart, err := h.cartService.Add(r.Context(), sessionID, input)
	if err != nil {
		cartError(w, err)
		return
	}
	response.OK(w, cart.View())
}

// UpdateItem sets the quantity of a cart line; zero removes it
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var input domain.CartQuantityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	sessionID, _ := middleware.GetSessionID(r.Context())

	cart, err := h.cartService.UpdateQuantity(r.Context(), sessionID, chi.URLParam(r, "productID"), input.Quantity)
	if err != nil {
		cartError(w, err)
		return
	}
	response.OK(w, cart.View())
}

// RemoveItem drops a product from the cart
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	cart, err := h.cartService.Remove(r.Context(), sessionID, chi.URLParam(r, "productID"))
	if err != nil {
		cartError(w, err)
		return
	}
	response.OK(w, cart.View())
}

// Clear empties the cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	if err := h.cartService.Clear(r.Context(), sessionID); err != nil {
		cartError(w, err)
		return
	}
	response.NoContent(w)
}

func cartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrCartItemNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, service.ErrOutOfStock):
		response.Conflict(w, err.Error())
	default:
		log.Error().Err(err).Msg("cart operation failed")
		response.InternalError(w, "cart operation failed")
	}
}
