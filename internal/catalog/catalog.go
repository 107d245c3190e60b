package catalog

import (
	_ "embed"
	"fmt"

	"github.com/Rrens/kopiloka/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var seedData []byte

// Categories offered by the marketplace, in display order
var Categories = []string{domain.MatchAll, "Arabika", "Robusta", "Liberika", "Luwak"}

// RoastLevels offered by the marketplace, in display order
var RoastLevels = []string{
	domain.MatchAll,
	string(domain.RoastLight),
	string(domain.RoastMedium),
	string(domain.RoastDark),
}

// Catalog is the static product list loaded at startup
type Catalog struct {
	products []domain.Product
}

// Load parses the embedded product dataset
func Load() (*Catalog, error) {
	return Parse(seedData)
}

// Parse builds a catalog from a YAML document with a top-level products list
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Products []domain.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has no id", p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &Catalog{products: doc.Products}, nil
}

// New wraps an existing product list
func New(products []domain.Product) *Catalog {
	return &Catalog{products: products}
}

// Products returns the catalog in its fixed order. Callers must not modify it.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// Query runs the marketplace query over the catalog
func (c *Catalog) Query(spec domain.FilterSpec) []domain.Product {
	return Query(c.products, spec)
}

// Find looks a product up by id
func (c *Catalog) Find(id string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Featured returns the first n products, as shown on the home page
func (c *Catalog) Featured(n int) []domain.Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	out := make([]domain.Product, n)
	copy(out, c.products[:n])
	return out
}

// Related returns up to n other products of the same category
func (c *Catalog) Related(p domain.Product, n int) []domain.Product {
	out := []domain.Product{}
	for _, other := range c.products {
		if len(out) == n {
			break
		}
		if other.Category == p.Category && other.ID != p.ID {
			out = append(out, other)
		}
	}
	return out
}

// Options lists the filter selector values for the marketplace
func (c *Catalog) Options() domain.FilterOptions {
	origins := []string{domain.MatchAll}
	seen := map[string]struct{}{}
	for _, p := range c.products {
		if _, ok := seen[p.Origin]; ok {
			continue
		}
		seen[p.Origin] = struct{}{}
		origins = append(origins, p.Origin)
	}

	return domain.FilterOptions{
		Categories:  Categories,
		Origins:     origins,
		RoastLevels: RoastLevels,
		PriceMin:    domain.DefaultPriceMin,
		PriceMax:    domain.DefaultPriceMax,
	}
}
