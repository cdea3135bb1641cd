package cart

import "storefront-core/internal/product"

type actionKind int

const (
	actionAdd actionKind = iota
	actionRemove
	actionSetQuantity
	actionClear
)

type action struct {
	kind      actionKind
	product   product.Product // actionAdd
	productID string          // actionRemove, actionSetQuantity
	quantity  int             // actionSetQuantity
}

type state struct {
	order []string // insertion order of product ids
	items map[string]LineItem

	subtotal      float64
	discountTotal float64
	total         float64
}

func newState() state {
	return state{items: make(map[string]LineItem)}
}

// reduce is the single transition function for the cart. Line items are
// deduplicated by product id, and every branch ends in a full totals
// recompute so partial updates can never drift.
func reduce(s state, a action) state {
	switch a.kind {
	case actionAdd:
		id := a.product.ID
		if item, ok := s.items[id]; ok {
			item.Quantity++
			s.items[id] = item
		} else {
			s.items[id] = newLineItem(a.product)
			s.order = append(s.order, id)
		}

	case actionRemove:
		if _, ok := s.items[a.productID]; ok {
			delete(s.items, a.productID)
			for i, id := range s.order {
				if id == a.productID {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		}

	case actionSetQuantity:
		if item, ok := s.items[a.productID]; ok {
			qty := a.quantity
			if qty < 1 {
				qty = 1 // removal is the only path to zero items
			}
			item.Quantity = qty
			s.items[a.productID] = item
		}

	case actionClear:
		s.order = nil
		s.items = make(map[string]LineItem)
	}

	s.subtotal, s.discountTotal, s.total = 0, 0, 0
	for _, id := range s.order {
		item := s.items[id]
		qty := float64(item.Quantity)
		s.subtotal += item.UnitPrice * qty
		s.total += item.UnitTotal() * qty
	}
	s.discountTotal = s.subtotal - s.total

	return s
}
