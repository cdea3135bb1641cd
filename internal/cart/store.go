package cart

import (
	"sync"

	"go.uber.org/zap"

	"storefront-core/internal/logger"
	"storefront-core/internal/product"
)

// Store is the single writer of the cart. Mutations are purely local state
// transitions and have no error path.
type Store struct {
	mu    sync.Mutex
	state state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) dispatch(a action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, a)
}

// Add puts one unit of the product in the cart. Adding a product that is
// already present increments its quantity instead of duplicating the line.
func (s *Store) Add(p product.Product) {
	s.dispatch(action{kind: actionAdd, product: p})

	logger.L().Debug("product added to cart",
		zap.String("layer", "cart"),
		zap.String("product_id", p.ID),
	)
}

// Remove deletes the line item. An absent id is a no-op.
func (s *Store) Remove(productID string) {
	s.dispatch(action{kind: actionRemove, productID: productID})
}

// SetQuantity sets the line's quantity, clamped to a minimum of 1. Use
// Remove to take an item out of the cart.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.dispatch(action{kind: actionSetQuantity, productID: productID, quantity: quantity})
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.dispatch(action{kind: actionClear})
}

// Snapshot returns the line items in insertion order with the recomputed
// totals.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]LineItem, 0, len(s.state.order))
	for _, id := range s.state.order {
		items = append(items, s.state.items[id])
	}

	return Snapshot{
		Items:         items,
		Subtotal:      s.state.subtotal,
		DiscountTotal: s.state.discountTotal,
		Total:         s.state.total,
	}
}
