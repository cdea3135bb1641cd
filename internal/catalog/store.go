package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"storefront-core/internal/logger"
	"storefront-core/internal/metrics"
	"storefront-core/internal/notify"
	"storefront-core/internal/product"
)

// Store is the single writer of the catalog's filter state and derived
// view. All mutations funnel through dispatch, so every observable state is
// the result of the pure reducer.
type Store struct {
	mu       sync.Mutex
	repo     product.Repository
	notifier notify.Notifier
	state    state
}

func NewStore(repo product.Repository, notifier notify.Notifier) *Store {
	return &Store{repo: repo, notifier: notifier}
}

func (s *Store) dispatch(a action) state {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
	metrics.CatalogRecomputesTotal.Inc()
	return s.state
}

// LoadProducts replaces the full product set, scoped to category when
// non-empty. On failure the set and view are emptied and the error flag is
// set; there is no retry.
func (s *Store) LoadProducts(ctx context.Context, category string) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "LoadProducts"),
		zap.String("category", category),
	)

	products, err := s.repo.ListProducts(ctx, category)
	if err != nil {
		log.Error("failed to load products", zap.Error(err))
		s.dispatch(action{kind: actionLoadFailed, message: err.Error()})
		s.notifier.Error(err.Error())
		return
	}

	next := s.dispatch(action{kind: actionProductsLoaded, products: products})
	log.Info("products loaded",
		zap.Int("count", len(products)),
		zap.Int("visible", len(next.view)),
	)
}

// SetCategoryFilter constrains the view to a category and, when subCategory
// is non-empty, a sub-category within it. Empty strings clear the
// respective dimension.
func (s *Store) SetCategoryFilter(category, subCategory string) {
	next := s.dispatch(action{
		kind:        actionSetCategoryFilter,
		category:    category,
		subCategory: subCategory,
	})

	logger.L().Debug("category filter applied",
		zap.String("layer", "catalog"),
		zap.String("category", category),
		zap.String("sub_category", subCategory),
		zap.Int("visible", len(next.view)),
	)
}

// SetPriceFilter constrains the view to products whose discounted price
// falls inside [min, max], inclusive on both ends. Zero matches is not an
// error; the user just gets told.
func (s *Store) SetPriceFilter(min, max float64) {
	next := s.dispatch(action{
		kind:  actionSetPriceFilter,
		price: PriceRange{Min: min, Max: max},
	})

	if len(next.view) == 0 && !next.err {
		s.notifier.Info("no products found in the selected price range")
	}
}

// ClearFilters resets every filter dimension; the view reverts to the full
// product set.
func (s *Store) ClearFilters() {
	s.dispatch(action{kind: actionClearFilters})
}

// Snapshot returns a copy of the derived state for rendering.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]product.Product, len(s.state.view))
	copy(view, s.state.view)

	return Snapshot{
		View:       view,
		Filters:    s.state.filters,
		Err:        s.state.err,
		ErrMessage: s.state.errMessage,
	}
}
