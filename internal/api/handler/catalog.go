package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/Rrens/kopiloka/internal/api/response"
	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/go-chi/chi/v5"
)

const (
	featuredCount = 4
	relatedCount  = 4
)

// CatalogHandler serves the product catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// List runs a marketplace query from the URL parameters
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	spec, errs := filterSpecFromQuery(r.URL.Query())
	if len(errs) > 0 {
		response.BadRequest(w, errs)
		return
	}

	products := h.catalog.Query(spec)
	response.OK(w, map[string]any{
		"products":       products,
		"total":          len(products),
		"filters":        spec,
		"active_filters": catalog.HasActiveFilters(spec),
	})
}

// Featured returns the home page selection
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.catalog.Featured(featuredCount))
}

// Get returns one product with related products
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, ok := h.catalog.Find(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w, "product not found")
		return
	}

	response.OK(w, map[string]any{
		"product": product,
		"related": h.catalog.Related(product, relatedCount),
	})
}

// Filters returns the selector values for the marketplace
func (h *CatalogHandler) Filters(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.catalog.Options())
}

func filterSpecFromQuery(q url.Values) (domain.FilterSpec, map[string]string) {
	spec := domain.DefaultFilterSpec()
	errs := map[string]string{}

	spec.Search = q.Get("search")
	if v := q.Get("category"); v != "" {
		spec.Category = v
	}
	if v := q.Get("origin"); v != "" {
		spec.Origin = v
	}
	if v := q.Get("roast"); v != "" {
		spec.RoastLevel = v
	}
	if v := q.Get("sort"); v != "" {
		spec.Sort = domain.ParseSortKey(v)
	}

	for param, dst := range map[string]*int{"min_price": &spec.PriceMin, "max_price": &spec.PriceMax} {
		v := q.Get(param)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs[param] = "must be a non-negative integer"
			continue
		}
		*dst = n
	}

	return spec, errs
}
