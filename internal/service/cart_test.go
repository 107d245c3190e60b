package service

import (
	"context"
	"testing"

	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Product{
		{ID: "1", Name: "Gayo Premium", Price: 185000, Stock: 5},
		{ID: "4", Name: "Lampung Robusta", Price: 85000, Stock: 100},
		{ID: "99", Name: "Habis", Price: 50000, Stock: 0},
	})
}

func TestCartService_AddMergesLines(t *testing.T) {
	svc := NewCartService(store.NewMemory(), testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "1", Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "4", Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
	assert.Equal(t, 3*185000+2*85000, cart.TotalPrice())

	view := cart.View()
	assert.Equal(t, 0, view.ShippingCost)
	assert.Equal(t, view.TotalPrice, view.GrandTotal)

	// sessions are isolated
	other, err := svc.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartService_AddClampsToStock(t *testing.T) {
	svc := NewCartService(store.NewMemory(), testCatalog())
	ctx := context.Background()

	cart, err := svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "1", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	cart, err = svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "1", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_AddErrors(t *testing.T) {
	svc := NewCartService(store.NewMemory(), testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "404", Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "99", Quantity: 1})
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	svc := NewCartService(store.NewMemory(), testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "4", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "s1", "4", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	_, err = svc.UpdateQuantity(ctx, "s1", "1", 2)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	cart, err = svc.UpdateQuantity(ctx, "s1", "4", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = svc.Remove(ctx, "s1", "4")
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_Clear(t *testing.T) {
	svc := NewCartService(store.NewMemory(), testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", domain.CartItemInput{ProductID: "4", Quantity: 3})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "s1"))

	cart, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.TotalItems())
}
