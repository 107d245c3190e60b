package service

import (
	"context"
	"testing"
	"time"

	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeller = domain.User{ID: "seller-1", Name: "Budi Petani Kopi", Role: domain.RoleSeller}

func listingInput(name string, price, stock int) domain.ListingInput {
	return domain.ListingInput{
		Name:        name,
		Description: "Kopi pilihan",
		Price:       price,
		Category:    "Arabika",
		Origin:      "Toraja, Sulawesi",
		RoastLevel:  domain.RoastMedium,
		Stock:       stock,
		Flavor:      "Cokelat , Rempah,Karamel",
	}
}

func newTestSellerService() *SellerService {
	svc := NewSellerService(store.NewMemory())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestSellerService_CreateUpdateDelete(t *testing.T) {
	svc := newTestSellerService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testSeller, listingInput("Toraja Kalosi", 200000, 10))
	require.NoError(t, err)
	assert.Equal(t, "seller-1700000000000", created.ID)
	assert.Equal(t, 4.5, created.Rating)
	assert.Equal(t, 0, created.Reviews)
	assert.Equal(t, "seller-1", created.SellerID)
	assert.Equal(t, "Budi Petani Kopi", created.SellerName)
	assert.Equal(t, []string{"Cokelat", "Rempah", "Karamel"}, created.Flavor)

	second, err := svc.Create(ctx, testSeller, listingInput("Enrekang", 150000, 5))
	require.NoError(t, err)
	assert.Equal(t, "seller-1700000000001", second.ID)

	updated, err := svc.Update(ctx, testSeller, created.ID, listingInput("Toraja Kalosi Natural", 220000, 8))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Rating, updated.Rating)
	assert.Equal(t, "Toraja Kalosi Natural", updated.Name)

	listings, err := svc.List(ctx, testSeller.ID)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, 220000, listings[0].Price)

	require.NoError(t, svc.Delete(ctx, testSeller.ID, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, testSeller.ID, created.ID), ErrListingNotFound)

	_, err = svc.Update(ctx, testSeller, "seller-404", listingInput("x", 1, 1))
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestSellerService_ListingsArePerSeller(t *testing.T) {
	svc := newTestSellerService()
	ctx := context.Background()

	_, err := svc.Create(ctx, testSeller, listingInput("Toraja Kalosi", 200000, 10))
	require.NoError(t, err)

	other, err := svc.List(ctx, "seller-2")
	require.NoError(t, err)
	assert.NotNil(t, other)
	assert.Empty(t, other)
}

func TestComputeSellerStats(t *testing.T) {
	stats := ComputeSellerStats([]domain.Product{
		{Price: 100000, Stock: 3, Reviews: 2},
		{Price: 50000, Stock: 10, Reviews: 0},
	})

	assert.Equal(t, domain.SellerStats{
		TotalProducts:  2,
		TotalStock:     13,
		InventoryValue: 800000,
		Revenue:        200000,
	}, stats)
}
