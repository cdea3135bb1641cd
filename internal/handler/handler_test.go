package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-core/internal/cart"
	"storefront-core/internal/catalog"
	"storefront-core/internal/category"
	"storefront-core/internal/product"
	"storefront-core/internal/search"
)

var testSecret = []byte("test-secret")

type stubRepo struct {
	products []product.Product
}

func (s *stubRepo) ListProducts(ctx context.Context, cat string) ([]product.Product, error) {
	if cat == "" {
		return s.products, nil
	}
	var out []product.Product
	for _, p := range s.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubRepo) SearchProducts(ctx context.Context, term string) ([]product.Product, error) {
	return s.products, nil
}

type stubCategories struct{}

func (stubCategories) ListCategories(ctx context.Context) ([]*category.Category, error) {
	return []*category.Category{{ID: "c1", Name: "Kitchen"}}, nil
}

type silentNotifier struct{}

func (silentNotifier) Info(string)  {}
func (silentNotifier) Error(string) {}

func newTestServer(t *testing.T) (*httptest.Server, *search.Controller) {
	t.Helper()

	repo := &stubRepo{products: []product.Product{
		{ID: "p1", Name: "Mug", Category: "kitchen", Price: 500, QuantityInStock: 4},
		{ID: "p2", Name: "Lamp", Category: "decor", Price: 1000, Discount: 20, QuantityInStock: 2},
	}}

	catalogStore := catalog.NewStore(repo, silentNotifier{})
	cartStore := cart.NewStore()
	searchCtrl := search.NewController(repo, nil, 5*time.Millisecond)
	t.Cleanup(searchCtrl.Close)

	h := New(catalogStore, cartStore, searchCtrl, stubCategories{})
	srv := httptest.NewServer(h.Router(testSecret))
	t.Cleanup(srv.Close)

	return srv, searchCtrl
}

func doJSON(t *testing.T, method, url string, body any, token string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func customerToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"role":    "customer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/catalog/load", loadRequest{}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decodeBody[catalog.Snapshot](t, resp)
	assert.Len(t, snap.View, 2)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/catalog/filters/category",
		categoryFilterRequest{Category: "decor"}, "")
	snap = decodeBody[catalog.Snapshot](t, resp)
	require.Len(t, snap.View, 1)
	assert.Equal(t, "p2", snap.View[0].ID)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/catalog/filters/price",
		priceFilterRequest{Min: 0, Max: 600}, "")
	snap = decodeBody[catalog.Snapshot](t, resp)
	assert.Empty(t, snap.View) // decor lamp discounted to 800, outside range

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/catalog/filters", nil, "")
	snap = decodeBody[catalog.Snapshot](t, resp)
	assert.Len(t, snap.View, 2)

	t.Run("InvalidPriceRange", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/catalog/filters/price",
			priceFilterRequest{Min: 100, Max: 5}, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCategoriesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/categories", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	categories := decodeBody[[]*category.Category](t, resp)
	require.Len(t, categories, 1)
	assert.Equal(t, "Kitchen", categories[0].Name)
}

func TestCartEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	token := customerToken(t)
	mug := product.Product{ID: "p1", Name: "Mug", SKU: "MUG-01", Price: 200, Discount: 10}

	t.Run("MutationsRequireSession", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", mug, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("ViewIsOpen", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, srv.URL+"/api/cart", nil, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("AddUpdateRemove", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", mug, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", mug, token)
		snap := decodeBody[cart.Snapshot](t, resp)
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 2, snap.Items[0].Quantity)
		assert.InDelta(t, 360.0, snap.Total, 1e-9)

		resp = doJSON(t, http.MethodPatch, srv.URL+"/api/cart/items/p1",
			quantityRequest{Quantity: 0}, token)
		snap = decodeBody[cart.Snapshot](t, resp)
		assert.Equal(t, 1, snap.Items[0].Quantity)

		resp = doJSON(t, http.MethodDelete, srv.URL+"/api/cart/items/p1", nil, token)
		snap = decodeBody[cart.Snapshot](t, resp)
		assert.Empty(t, snap.Items)
	})

	t.Run("RejectsMalformedProduct", func(t *testing.T) {
		bad := product.Product{ID: "", Price: 10}
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", bad, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSearchEndpoints(t *testing.T) {
	srv, ctrl := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/search/input",
		searchInputRequest{Term: "mug"}, "")
	snap := decodeBody[search.Snapshot](t, resp)
	assert.Equal(t, search.StatusDebouncing, snap.Status)

	require.Eventually(t, func() bool {
		return ctrl.Snapshot().Status == search.StatusResults
	}, time.Second, time.Millisecond)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/search/keys",
		searchKeyRequest{Key: "ArrowDown"}, "")
	snap = decodeBody[search.Snapshot](t, resp)
	assert.Equal(t, 0, snap.SelectedIndex)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/search/keys",
		searchKeyRequest{Key: "Enter"}, "")
	commit := decodeBody[commitResponse](t, resp)
	assert.True(t, commit.Committed)
	require.NotNil(t, commit.Product)
	assert.Equal(t, "p1", commit.Product.ID)

	t.Run("UnsupportedKey", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/search/keys",
			searchKeyRequest{Key: "Tab"}, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Blur", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/search/blur", nil, "")
		snap := decodeBody[search.Snapshot](t, resp)
		assert.False(t, snap.DropdownOpen)
	})
}
