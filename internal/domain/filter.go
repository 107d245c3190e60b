package domain

// SortKey orders a filtered product list
type SortKey string

const (
	SortFeatured        SortKey = "featured"
	SortPriceAscending  SortKey = "price-ascending"
	SortPriceDescending SortKey = "price-descending"
	SortRatingDesc      SortKey = "rating-descending"
	SortNewestFirst     SortKey = "newest-first"
)

// Default price bounds of the marketplace slider
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 1000000
)

// ParseSortKey maps a sort parameter to a SortKey. The short storefront
// names are accepted as aliases; anything unknown keeps catalog order.
func ParseSortKey(s string) SortKey {
	switch s {
	case "price-ascending", "price-low":
		return SortPriceAscending
	case "price-descending", "price-high":
		return SortPriceDescending
	case "rating-descending", "rating":
		return SortRatingDesc
	case "newest-first", "newest":
		return SortNewestFirst
	}
	return SortFeatured
}

// FilterSpec describes one catalog query
type FilterSpec struct {
	Search     string  `json:"search"`
	Category   string  `json:"category"`
	Origin     string  `json:"origin"`
	RoastLevel string  `json:"roast_level"`
	PriceMin   int     `json:"price_min"`
	PriceMax   int     `json:"price_max"`
	Sort       SortKey `json:"sort"`
}

// DefaultFilterSpec matches the whole catalog in catalog order
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Category:   MatchAll,
		Origin:     MatchAll,
		RoastLevel: MatchAll,
		PriceMin:   DefaultPriceMin,
		PriceMax:   DefaultPriceMax,
		Sort:       SortFeatured,
	}
}

// FilterOptions lists the selector values offered by the marketplace
type FilterOptions struct {
	Categories  []string `json:"categories"`
	Origins     []string `json:"origins"`
	RoastLevels []string `json:"roast_levels"`
	PriceMin    int      `json:"price_min"`
	PriceMax    int      `json:"price_max"`
}
