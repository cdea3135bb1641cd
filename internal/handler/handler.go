// Package handler is the thin JSON facade over the stores: it decodes UI
// events, dispatches them into the owning store or controller, and renders
// the derived snapshots. It holds no state of its own.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront-core/internal/cart"
	"storefront-core/internal/catalog"
	"storefront-core/internal/category"
	"storefront-core/internal/middleware"
	"storefront-core/internal/search"
)

type Handler struct {
	catalog    *catalog.Store
	cart       *cart.Store
	search     *search.Controller
	categories category.Repository
}

func New(catalogStore *catalog.Store, cartStore *cart.Store, searchCtrl *search.Controller, categories category.Repository) *Handler {
	return &Handler{
		catalog:    catalogStore,
		cart:       cartStore,
		search:     searchCtrl,
		categories: categories,
	}
}

// Router assembles the facade with its middleware chain. Cart mutations
// require a session; everything else is open to anonymous visitors.
func (h *Handler) Router(secret []byte) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(middleware.RateLimit)
	r.Use(middleware.Auth(secret))

	r.Get("/healthz", h.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", h.catalogView)
		r.Post("/catalog/load", h.catalogLoad)
		r.Post("/catalog/filters/category", h.catalogSetCategory)
		r.Post("/catalog/filters/price", h.catalogSetPrice)
		r.Delete("/catalog/filters", h.catalogClearFilters)

		r.Get("/categories", h.listCategories)

		r.Get("/cart", h.cartView)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Post("/cart/items", h.cartAdd)
			r.Patch("/cart/items/{productID}", h.cartSetQuantity)
			r.Delete("/cart/items/{productID}", h.cartRemove)
			r.Delete("/cart", h.cartClear)
		})

		r.Get("/search", h.searchView)
		r.Post("/search/input", h.searchInput)
		r.Post("/search/keys", h.searchKey)
		r.Post("/search/blur", h.searchBlur)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
