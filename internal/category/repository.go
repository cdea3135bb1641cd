package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrFetchFailure = errors.New("category fetch failed")

// Repository lists the categories available to the filter UI. Read-only;
// categories are owned by the backend, not by the stores.
type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
}

type restRepository struct {
	baseURL string
	client  *http.Client
}

func NewRESTRepository(baseURL string) Repository {
	return &restRepository{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *restRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/category", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailure, resp.StatusCode)
	}

	var categories []*Category
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	return categories, nil
}
