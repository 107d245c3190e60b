package catalog_test

import (
	"testing"

	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	assert.Equal(t, 12, c.Len())
	for _, p := range c.Products() {
		assert.NotEmpty(t, p.Name, p.ID)
		assert.Contains(t, catalog.Categories, p.Category, p.ID)
		assert.Contains(t, []domain.RoastLevel{domain.RoastLight, domain.RoastMedium, domain.RoastDark}, p.RoastLevel, p.ID)
		assert.GreaterOrEqual(t, p.Price, 0)
		assert.NotEmpty(t, p.Flavor, p.ID)
	}
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	_, err := catalog.Parse([]byte(`
products:
  - id: "1"
    name: A
  - id: "1"
    name: B
`))
	assert.Error(t, err)
}

func TestParse_RejectsMissingID(t *testing.T) {
	_, err := catalog.Parse([]byte(`
products:
  - name: A
`))
	assert.Error(t, err)
}

func TestCatalog_FindFeaturedRelated(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	p, ok := c.Find("4")
	require.True(t, ok)
	assert.Equal(t, "Lampung Robusta", p.Name)

	_, ok = c.Find("999")
	assert.False(t, ok)

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(c.Featured(4)))
	assert.Len(t, c.Featured(100), c.Len())

	related := c.Related(p, 4)
	assert.Equal(t, []string{"5", "6"}, ids(related))

	gayo, _ := c.Find("1")
	related = c.Related(gayo, 4)
	assert.Len(t, related, 4)
	for _, r := range related {
		assert.Equal(t, "Arabika", r.Category)
		assert.NotEqual(t, "1", r.ID)
	}
}

func TestCatalog_Options(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	opts := c.Options()

	assert.Equal(t, domain.MatchAll, opts.Origins[0])
	assert.Equal(t, "Gayo, Aceh", opts.Origins[1])
	assert.Len(t, opts.Origins, 12) // 11 distinct origins plus the sentinel
	assert.Equal(t, []string{"Semua", "light", "medium", "dark"}, opts.RoastLevels)
	assert.Equal(t, 1000000, opts.PriceMax)
}
