// Package catalog holds the product catalog and the marketplace query engine.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Rrens/kopiloka/internal/domain"
)

// Query returns the products matching spec, ordered by spec.Sort.
// The input slice is never modified; the result shares its elements.
func Query(products []domain.Product, spec domain.FilterSpec) []domain.Product {
	search := strings.ToLower(spec.Search)

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, spec, search) {
			result = append(result, p)
		}
	}

	sortProducts(result, spec.Sort)
	return result
}

func matches(p domain.Product, spec domain.FilterSpec, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) &&
		!strings.Contains(strings.ToLower(p.Origin), search) {
		return false
	}
	if spec.Category != domain.MatchAll && spec.Category != p.Category {
		return false
	}
	if spec.Origin != domain.MatchAll && spec.Origin != p.Origin {
		return false
	}
	if spec.RoastLevel != domain.MatchAll && spec.RoastLevel != string(p.RoastLevel) {
		return false
	}
	return p.Price >= spec.PriceMin && p.Price <= spec.PriceMax
}

func sortProducts(ps []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAscending:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case domain.SortPriceDescending:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case domain.SortRatingDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	case domain.SortNewestFirst:
		sort.SliceStable(ps, func(i, j int) bool { return newerThan(ps[i].ID, ps[j].ID) })
	}
}

// newerThan orders identifiers for newest-first. Numeric ids compare by
// value. Non-numeric ids (seller listings, "seller-<ms>") rank ahead of
// numeric ones and compare as strings among themselves.
func newerThan(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na > nb
	case errA != nil && errB != nil:
		return a > b
	default:
		return errA != nil
	}
}

// HasActiveFilters reports whether spec narrows the catalog beyond the
// search text
func HasActiveFilters(spec domain.FilterSpec) bool {
	return spec.Category != domain.MatchAll ||
		spec.Origin != domain.MatchAll ||
		spec.RoastLevel != domain.MatchAll ||
		spec.PriceMin > domain.DefaultPriceMin ||
		spec.PriceMax < domain.DefaultPriceMax
}
