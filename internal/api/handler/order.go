package handler

import (
	"errors"
	"net/http"

	"github.com/Rrens/kopiloka/internal/api/middleware"
	"github.com/Rrens/kopiloka/internal/api/response"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/service"
	"github.com/rs/zerolog/log"
)

// OrderHandler handles checkout and the buyer dashboard
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderView struct {
	domain.Order
	StatusLabel string `json:"status_label"`
}

func viewOrder(o domain.Order) orderView {
	return orderView{Order: o, StatusLabel: o.Status.Label()}
}

// Checkout places an order from the session cart. Logged-in buyers get the
// order attached to their account.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var input domain.CheckoutInput
	if !decodeAndValidate(w, r, &input) {
		return
	}
	sessionID, _ := middleware.GetSessionID(r.Context())

	var buyer *domain.User
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		email, _ := middleware.GetUserEmail(r.Context())
		buyer = &domain.User{ID: userID, Email: email}
	}

	order, err := h.orderService.Checkout(r.Context(), sessionID, buyer, input)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			response.BadRequest(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("checkout failed")
		response.InternalError(w, "failed to place order")
		return
	}

	response.Created(w, viewOrder(*order))
}

// BuyerOrders lists the buyer's orders with the dashboard summary
func (h *OrderHandler) BuyerOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	email, _ := middleware.GetUserEmail(r.Context())

	orders, err := h.orderService.ListForBuyer(r.Context(), domain.User{ID: userID, Email: email})
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")
		response.InternalError(w, "failed to list orders")
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, viewOrder(o))
	}

	response.OK(w, map[string]any{
		"orders":  views,
		"summary": service.Summarize(orders),
	})
}
