package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rrens/kopiloka/internal/api/handler"
	"github.com/Rrens/kopiloka/internal/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestReadyCheck(t *testing.T) {
	tests := []struct {
		name   string
		ping   error
		status int
	}{
		{name: "ready", status: http.StatusOK},
		{name: "store down", ping: errors.New("connection refused"), status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.ReadyCheck(pingerFunc(func(context.Context) error { return tt.ping }))
			rec := httptest.NewRecorder()

			h(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func newCatalogRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	h := handler.NewCatalogHandler(cat)
	r := chi.NewRouter()
	r.Get("/products", h.List)
	r.Get("/products/featured", h.Featured)
	r.Get("/products/{id}", h.Get)
	r.Get("/catalog/filters", h.Filters)
	return r
}

func TestCatalogHandler_List(t *testing.T) {
	r := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?category=Robusta&max_price=150000&sort=price-low", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
		Total         int  `json:"total"`
		ActiveFilters bool `json:"active_filters"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))

	assert.Equal(t, 3, data.Total)
	assert.True(t, data.ActiveFilters)
	ids := []string{data.Products[0].ID, data.Products[1].ID, data.Products[2].ID}
	assert.Equal(t, []string{"6", "4", "5"}, ids)
}

func TestCatalogHandler_ListRejectsBadPrice(t *testing.T) {
	r := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?min_price=murah", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, string(env.Error), "min_price")
}

func TestCatalogHandler_Get(t *testing.T) {
	r := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/4", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Product struct {
			Name string `json:"name"`
		} `json:"product"`
		Related []struct {
			Category string `json:"category"`
		} `json:"related"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "Lampung Robusta", data.Product.Name)
	require.NotEmpty(t, data.Related)
	for _, p := range data.Related {
		assert.Equal(t, "Robusta", p.Category)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_Filters(t *testing.T) {
	r := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/filters", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Categories []string `json:"categories"`
		PriceMax   int      `json:"price_max"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, []string{"Semua", "Arabika", "Robusta", "Liberika", "Luwak"}, data.Categories)
	assert.Equal(t, 1000000, data.PriceMax)
}
