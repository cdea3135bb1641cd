package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"storefront-core/internal/logger"
)

// Repository is the backend collaborator the catalog and search engines
// read products from.
type Repository interface {
	// ListProducts returns every product, or only those in the given
	// category when category is non-empty.
	ListProducts(ctx context.Context, category string) ([]Product, error)
	// SearchProducts returns up to the configured limit of products
	// matching the term.
	SearchProducts(ctx context.Context, term string) ([]Product, error)
}

type restRepository struct {
	baseURL     string
	client      *http.Client
	searchLimit int
}

// NewRESTRepository builds a Repository over the storefront REST backend.
// Fetches are single-shot: the stores own the no-retry policy, so the
// client must not retry on their behalf.
func NewRESTRepository(baseURL string, searchLimit int) Repository {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &restRepository{
		baseURL: baseURL,
		client: &http.Client{
			Transport: transport,
			Timeout:   15 * time.Second,
		},
		searchLimit: searchLimit,
	}
}

func (r *restRepository) ListProducts(ctx context.Context, category string) ([]Product, error) {
	endpoint := r.baseURL + "/products/category"
	if category != "" {
		endpoint += "/" + url.PathEscape(category)
	}

	var products []Product
	if err := r.getJSON(ctx, endpoint, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}

	return r.sanitize(ctx, products), nil
}

// searchEnvelope matches the backend's search response shape.
type searchEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Products []Product `json:"products"`
	} `json:"data"`
}

func (r *restRepository) SearchProducts(ctx context.Context, term string) ([]Product, error) {
	endpoint := r.baseURL + "/products/search/ser?q=" + url.QueryEscape(term) +
		"&limit=" + strconv.Itoa(r.searchLimit)

	var envelope searchEnvelope
	if err := r.getJSON(ctx, endpoint, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailure, err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("%w: backend reported failure", ErrSearchFailure)
	}

	products := r.sanitize(ctx, envelope.Data.Products)
	if len(products) > r.searchLimit {
		products = products[:r.searchLimit]
	}
	return products, nil
}

func (r *restRepository) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// sanitize drops malformed products at the boundary so the stores never see
// missing-field ambiguity.
func (r *restRepository) sanitize(ctx context.Context, products []Product) []Product {
	valid := make([]Product, 0, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			logger.FromCtx(ctx).Warn("dropping malformed product",
				zap.String("product_id", p.ID),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, p)
	}
	return valid
}
