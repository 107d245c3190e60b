package domain

import "strings"

// MatchAll is the selector value that disables a category, origin or roast filter
const MatchAll = "Semua"

// RoastLevel is the roast profile of a coffee product
type RoastLevel string

const (
	RoastLight  RoastLevel = "light"
	RoastMedium RoastLevel = "medium"
	RoastDark   RoastLevel = "dark"
)

// Label returns the display label used by the storefront
func (r RoastLevel) Label() string {
	switch r {
	case RoastLight:
		return "Light Roast"
	case RoastMedium:
		return "Medium Roast"
	case RoastDark:
		return "Dark Roast"
	}
	return string(r)
}

// Product is a catalog entry. Entries are shared read-only between queries.
type Product struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Price       int        `json:"price" yaml:"price"`
	Image       string     `json:"image" yaml:"image"`
	Category    string     `json:"category" yaml:"category"`
	Origin      string     `json:"origin" yaml:"origin"`
	RoastLevel  RoastLevel `json:"roast_level" yaml:"roast_level"`
	Rating      float64    `json:"rating" yaml:"rating"`
	Reviews     int        `json:"reviews" yaml:"reviews"`
	SellerID    string     `json:"seller_id" yaml:"seller_id"`
	SellerName  string     `json:"seller_name" yaml:"seller_name"`
	Stock       int        `json:"stock" yaml:"stock"`
	Weight      string     `json:"weight" yaml:"weight"`
	Flavor      []string   `json:"flavor" yaml:"flavor"`
	IsOrganic   bool       `json:"is_organic" yaml:"is_organic"`
}

// ListingInput is the seller form for creating or editing a product.
// Flavor is a comma separated list, as typed into the form.
type ListingInput struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description" validate:"required,max=2000"`
	Price       int        `json:"price" validate:"required,min=1"`
	Image       string     `json:"image" validate:"omitempty,url"`
	Category    string     `json:"category" validate:"required"`
	Origin      string     `json:"origin" validate:"required,max=200"`
	RoastLevel  RoastLevel `json:"roast_level" validate:"required,oneof=light medium dark"`
	Weight      string     `json:"weight" validate:"omitempty,max=20"`
	Stock       int        `json:"stock" validate:"min=0"`
	Flavor      string     `json:"flavor" validate:"max=500"`
	IsOrganic   bool       `json:"is_organic"`
}

// FlavorTags splits the comma separated flavor field into trimmed tags
func (in ListingInput) FlavorTags() []string {
	parts := strings.Split(in.Flavor, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// SellerStats summarizes a seller's listings
type SellerStats struct {
	TotalProducts  int `json:"total_products"`
	TotalStock     int `json:"total_stock"`
	InventoryValue int `json:"inventory_value"`
	// Revenue is estimated as price times review count
	Revenue int `json:"revenue"`
}
