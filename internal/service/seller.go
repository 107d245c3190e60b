package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/store"
)

// New listings start with this rating
const initialListingRating = 4.5

// SellerService manages a seller's own product listings
type SellerService struct {
	store domain.DocumentStore
	now   func() time.Time

	mu sync.Mutex
}

// NewSellerService creates a new seller service
func NewSellerService(docs domain.DocumentStore) *SellerService {
	return &SellerService{store: docs, now: time.Now}
}

// List returns the seller's listings in creation order
func (s *SellerService) List(ctx context.Context, sellerID string) ([]domain.Product, error) {
	var listings []domain.Product
	if _, err := s.store.Get(ctx, store.SellerProductsKey(sellerID), &listings); err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	if listings == nil {
		listings = []domain.Product{}
	}
	return listings, nil
}

// Create adds a listing owned by seller
func (s *SellerService) Create(ctx context.Context, seller domain.User, input domain.ListingInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.List(ctx, seller.ID)
	if err != nil {
		return nil, err
	}

	id := timestampID("seller", s.now(), func(id string) bool {
		return indexOfListing(listings, id) >= 0
	})

	product := fromListingInput(input)
	product.ID = id
	product.SellerID = seller.ID
	product.SellerName = seller.Name
	product.Rating = initialListingRating
	product.Reviews = 0

	listings = append(listings, product)
	if err := s.save(ctx, seller.ID, listings); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the editable fields of a listing, keeping its id,
// rating and review count
func (s *SellerService) Update(ctx context.Context, seller domain.User, id string, input domain.ListingInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.List(ctx, seller.ID)
	if err != nil {
		return nil, err
	}

	i := indexOfListing(listings, id)
	if i < 0 {
		return nil, ErrListingNotFound
	}

	existing := listings[i]
	product := fromListingInput(input)
	product.ID = existing.ID
	product.SellerID = seller.ID
	product.SellerName = seller.Name
	product.Rating = existing.Rating
	product.Reviews = existing.Reviews

	listings[i] = product
	if err := s.save(ctx, seller.ID, listings); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a listing
func (s *SellerService) Delete(ctx context.Context, sellerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.List(ctx, sellerID)
	if err != nil {
		return err
	}

	i := indexOfListing(listings, id)
	if i < 0 {
		return ErrListingNotFound
	}

	listings = append(listings[:i], listings[i+1:]...)
	return s.save(ctx, sellerID, listings)
}

// Stats summarizes the seller's listings
func (s *SellerService) Stats(ctx context.Context, sellerID string) (domain.SellerStats, error) {
	listings, err := s.List(ctx, sellerID)
	if err != nil {
		return domain.SellerStats{}, err
	}
	return ComputeSellerStats(listings), nil
}

// ComputeSellerStats aggregates listings
func ComputeSellerStats(listings []domain.Product) domain.SellerStats {
	stats := domain.SellerStats{TotalProducts: len(listings)}
	for _, p := range listings {
		stats.TotalStock += p.Stock
		stats.InventoryValue += p.Price * p.Stock
		stats.Revenue += p.Price * p.Reviews
	}
	return stats
}

func (s *SellerService) save(ctx context.Context, sellerID string, listings []domain.Product) error {
	if err := s.store.Put(ctx, store.SellerProductsKey(sellerID), listings); err != nil {
		return fmt.Errorf("failed to save listings: %w", err)
	}
	return nil
}

func indexOfListing(listings []domain.Product, id string) int {
	for i, p := range listings {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func fromListingInput(in domain.ListingInput) domain.Product {
	return domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Origin:      strings.TrimSpace(in.Origin),
		RoastLevel:  in.RoastLevel,
		Stock:       in.Stock,
		Weight:      in.Weight,
		Flavor:      in.FlavorTags(),
		IsOrganic:   in.IsOrganic,
	}
}
