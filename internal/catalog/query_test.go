package catalog_test

import (
	"testing"

	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadProducts(t *testing.T) []domain.Product {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	require.NotZero(t, c.Len())
	return c.Products()
}

func ids(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestQuery_EmptySearchReturnsCatalog(t *testing.T) {
	products := loadProducts(t)

	got := catalog.Query(products, domain.DefaultFilterSpec())

	assert.Equal(t, ids(products), ids(got))
}

func TestQuery_CategoryAndPrice(t *testing.T) {
	products := loadProducts(t)
	spec := domain.DefaultFilterSpec()
	spec.Category = "Robusta"
	spec.PriceMax = 150000

	got := catalog.Query(products, spec)

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, "Robusta", p.Category)
		assert.LessOrEqual(t, p.Price, 150000)
	}
	assert.Equal(t, []string{"4", "5", "6"}, ids(got))
}

func TestQuery_Search(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Gayo Premium", Description: "fruity", Origin: "Gayo, Aceh", Price: 10},
		{ID: "2", Name: "Lampung", Description: "bold robusta", Origin: "Lampung", Price: 10},
		{ID: "3", Name: "Toraja", Description: "spicy", Origin: "Toraja, Sulawesi", Price: 10},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"by name", "gayo", []string{"1"}},
		{"case insensitive", "LAMPUNG", []string{"2"}},
		{"by description", "ROBUSTA", []string{"2"}},
		{"by origin", "sulawesi", []string{"3"}},
		{"no match", "xyz", []string{}},
		{"empty", "", []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := domain.DefaultFilterSpec()
			spec.Search = tt.search
			assert.Equal(t, tt.want, ids(catalog.Query(products, spec)))
		})
	}
}

func TestQuery_Selectors(t *testing.T) {
	products := loadProducts(t)

	t.Run("origin exact", func(t *testing.T) {
		spec := domain.DefaultFilterSpec()
		spec.Origin = "Gayo, Aceh"
		assert.Equal(t, []string{"1", "10"}, ids(catalog.Query(products, spec)))
	})

	t.Run("origin is not a substring match", func(t *testing.T) {
		spec := domain.DefaultFilterSpec()
		spec.Origin = "Gayo"
		assert.Empty(t, catalog.Query(products, spec))
	})

	t.Run("roast level", func(t *testing.T) {
		spec := domain.DefaultFilterSpec()
		spec.RoastLevel = "dark"
		for _, p := range catalog.Query(products, spec) {
			assert.Equal(t, domain.RoastDark, p.RoastLevel)
		}
	})

	t.Run("category is case sensitive", func(t *testing.T) {
		spec := domain.DefaultFilterSpec()
		spec.Category = "robusta"
		assert.Empty(t, catalog.Query(products, spec))
	})

	t.Run("unknown category", func(t *testing.T) {
		spec := domain.DefaultFilterSpec()
		spec.Category = "Excelsa"
		assert.Empty(t, catalog.Query(products, spec))
	})
}

func TestQuery_PriceBoundsInclusive(t *testing.T) {
	products := loadProducts(t)
	spec := domain.DefaultFilterSpec()
	spec.PriceMin = 85000
	spec.PriceMax = 85000

	assert.Equal(t, []string{"4"}, ids(catalog.Query(products, spec)))
}

func TestQuery_InvertedPriceRange(t *testing.T) {
	products := loadProducts(t)
	spec := domain.DefaultFilterSpec()
	spec.PriceMin = 200000
	spec.PriceMax = 100000

	got := catalog.Query(products, spec)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQuery_Sorting(t *testing.T) {
	products := loadProducts(t)

	tests := []struct {
		key     domain.SortKey
		ordered func(a, b domain.Product) bool
	}{
		{domain.SortPriceAscending, func(a, b domain.Product) bool { return a.Price <= b.Price }},
		{domain.SortPriceDescending, func(a, b domain.Product) bool { return a.Price >= b.Price }},
		{domain.SortRatingDesc, func(a, b domain.Product) bool { return a.Rating >= b.Rating }},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			spec := domain.DefaultFilterSpec()
			spec.Sort = tt.key
			got := catalog.Query(products, spec)
			require.Len(t, got, len(products))
			for i := 1; i < len(got); i++ {
				assert.True(t, tt.ordered(got[i-1], got[i]), "%s before %s", got[i-1].ID, got[i].ID)
			}
		})
	}
}

func TestQuery_StableForEqualKeys(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Price: 100, Rating: 4.5},
		{ID: "2", Price: 50, Rating: 4.5},
		{ID: "3", Price: 100, Rating: 4.8},
		{ID: "4", Price: 50, Rating: 4.5},
	}
	spec := domain.DefaultFilterSpec()

	spec.Sort = domain.SortPriceAscending
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(catalog.Query(products, spec)))

	spec.Sort = domain.SortRatingDesc
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(catalog.Query(products, spec)))
}

func TestQuery_NewestFirst(t *testing.T) {
	products := []domain.Product{
		{ID: "2"},
		{ID: "10"},
		{ID: "seller-1700000000000"},
		{ID: "1"},
		{ID: "seller-1700000000500"},
	}
	spec := domain.DefaultFilterSpec()
	spec.Sort = domain.SortNewestFirst

	got := catalog.Query(products, spec)

	assert.Equal(t, []string{"seller-1700000000500", "seller-1700000000000", "10", "2", "1"}, ids(got))
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	products := loadProducts(t)
	before := ids(products)
	spec := domain.DefaultFilterSpec()
	spec.Sort = domain.SortPriceDescending

	_ = catalog.Query(products, spec)

	assert.Equal(t, before, ids(products))
}

func TestQuery_Idempotent(t *testing.T) {
	products := loadProducts(t)
	spec := domain.DefaultFilterSpec()
	spec.Search = "arabika"
	spec.Sort = domain.SortRatingDesc

	assert.Equal(t, catalog.Query(products, spec), catalog.Query(products, spec))
}

func TestQuery_NarrowingNeverGrows(t *testing.T) {
	products := loadProducts(t)
	spec := domain.DefaultFilterSpec()
	prev := len(catalog.Query(products, spec))

	for max := domain.DefaultPriceMax; max >= 0; max -= 50000 {
		spec.PriceMax = max
		n := len(catalog.Query(products, spec))
		assert.LessOrEqual(t, n, prev)
		prev = n
	}
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]domain.SortKey{
		"":                 domain.SortFeatured,
		"featured":         domain.SortFeatured,
		"price-low":        domain.SortPriceAscending,
		"price-ascending":  domain.SortPriceAscending,
		"price-high":       domain.SortPriceDescending,
		"price-descending": domain.SortPriceDescending,
		"rating":           domain.SortRatingDesc,
		"newest":           domain.SortNewestFirst,
		"bogus":            domain.SortFeatured,
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.ParseSortKey(in), in)
	}
}

func TestHasActiveFilters(t *testing.T) {
	spec := domain.DefaultFilterSpec()
	assert.False(t, catalog.HasActiveFilters(spec))

	spec.Search = "gayo"
	assert.False(t, catalog.HasActiveFilters(spec))

	spec.PriceMin = 1
	assert.True(t, catalog.HasActiveFilters(spec))
}
