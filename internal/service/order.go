package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/events"
	"github.com/Rrens/kopiloka/internal/store"
	"github.com/rs/zerolog/log"
)

// OrderService places and lists orders
type OrderService struct {
	store     domain.DocumentStore
	carts     *CartService
	publisher events.Publisher
	now       func() time.Time

	mu sync.Mutex
}

// NewOrderService creates a new order service
func NewOrderService(docs domain.DocumentStore, carts *CartService, publisher events.Publisher) *OrderService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &OrderService{
		store:     docs,
		carts:     carts,
		publisher: publisher,
		now:       time.Now,
	}
}

// Checkout turns the session's cart into a confirmed order and empties the
// cart. buyer is nil for guests.
func (s *OrderService) Checkout(ctx context.Context, sessionID string, buyer *domain.User, input domain.CheckoutInput) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	order := domain.Order{
		BuyerID:       domain.GuestBuyerID,
		Items:         cart.Items,
		TotalPrice:    cart.TotalPrice(),
		Name:          strings.TrimSpace(input.Name),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		Address:       strings.TrimSpace(input.Address),
		Notes:         input.Notes,
		PaymentMethod: input.PaymentMethod,
		Status:        domain.OrderConfirmed,
		CreatedAt:     s.now().UTC(),
	}
	if buyer != nil {
		order.BuyerID = buyer.ID
		if order.Email == "" {
			order.Email = buyer.Email
		}
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentTransfer
	}

	s.mu.Lock()
	orders, err := s.all(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	order.ID = timestampID("ORD", order.CreatedAt, func(id string) bool {
		for _, o := range orders {
			if o.ID == id {
				return true
			}
		}
		return false
	})

	orders = append(orders, order)
	err = s.store.Put(ctx, store.KeyOrders, orders)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed to clear cart after checkout")
	}

	event := events.Event{
		Type:       events.TypeOrderPlaced,
		Key:        order.ID,
		OccurredAt: order.CreatedAt,
		Payload:    order,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed to publish order event")
	}

	log.Info().
		Str("order_id", order.ID).
		Str("buyer_id", order.BuyerID).
		Int("total_price", order.TotalPrice).
		Msg("order placed")

	return &order, nil
}

// ListForBuyer returns the orders placed by the user or under the user's email
func (s *OrderService) ListForBuyer(ctx context.Context, user domain.User) ([]domain.Order, error) {
	orders, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]domain.Order, 0)
	for _, o := range orders {
		if o.BuyerID == user.ID || (user.Email != "" && strings.EqualFold(o.Email, user.Email)) {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

// Summarize aggregates orders for the buyer dashboard
func Summarize(orders []domain.Order) domain.BuyerSummary {
	summary := domain.BuyerSummary{TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Status.InProgress() {
			summary.InProgress++
		}
		summary.TotalSpent += o.TotalPrice
	}
	return summary
}

func (s *OrderService) all(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := s.store.Get(ctx, store.KeyOrders, &orders); err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}
