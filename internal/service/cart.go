package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/store"
)

// CartService manages the shopping cart of each session
type CartService struct {
	store   domain.DocumentStore
	catalog *catalog.Catalog

	mu sync.Mutex
}

// NewCartService creates a new cart service
func NewCartService(docs domain.DocumentStore, cat *catalog.Catalog) *CartService {
	return &CartService{store: docs, catalog: cat}
}

// Get returns the session's cart; an unknown session has an empty cart
func (s *CartService) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	var cart domain.Cart
	if _, err := s.store.Get(ctx, store.CartKey(sessionID), &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

// Add puts quantity units of a product in the cart, merging with an
// existing line. The line never exceeds the product's stock.
func (s *CartService) Add(ctx context.Context, sessionID string, input domain.CartItemInput) (domain.Cart, error) {
	product, ok := s.catalog.Find(input.ProductID)
	if !ok {
		return domain.Cart{}, ErrProductNotFound
	}
	if product.Stock <= 0 {
		return domain.Cart{}, ErrOutOfStock
	}

	return s.update(ctx, sessionID, func(cart *domain.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ID == product.ID {
				cart.Items[i].Quantity = clampQuantity(cart.Items[i].Quantity+input.Quantity, product.Stock)
				return nil
			}
		}
		cart.Items = append(cart.Items, domain.CartItem{
			Product:  product,
			Quantity: clampQuantity(input.Quantity, product.Stock),
		})
		return nil
	})
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	return s.update(ctx, sessionID, func(cart *domain.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ID == productID {
				cart.Items[i].Quantity = clampQuantity(quantity, cart.Items[i].Stock)
				return nil
			}
		}
		return ErrCartItemNotFound
	})
}

// Remove drops a product from the cart
func (s *CartService) Remove(ctx context.Context, sessionID, productID string) (domain.Cart, error) {
	return s.update(ctx, sessionID, func(cart *domain.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ID == productID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
		return ErrCartItemNotFound
	})
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, store.CartKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *CartService) update(ctx context.Context, sessionID string, fn func(*domain.Cart) error) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	if err := fn(&cart); err != nil {
		return domain.Cart{}, err
	}

	if err := s.store.Put(ctx, store.CartKey(sessionID), cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

func clampQuantity(quantity, stock int) int {
	if stock > 0 && quantity > stock {
		return stock
	}
	return quantity
}
