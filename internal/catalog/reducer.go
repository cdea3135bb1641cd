package catalog

import "storefront-core/internal/product"

type actionKind int

const (
	actionProductsLoaded actionKind = iota
	actionLoadFailed
	actionSetCategoryFilter
	actionSetPriceFilter
	actionClearFilters
)

type action struct {
	kind actionKind

	products    []product.Product // actionProductsLoaded
	message     string            // actionLoadFailed
	category    string            // actionSetCategoryFilter
	subCategory string            // actionSetCategoryFilter
	price       PriceRange        // actionSetPriceFilter
}

type state struct {
	products   []product.Product
	filters    FilterState
	view       []product.Product
	err        bool
	errMessage string
}

// reduce is the single pure transition function for the catalog store.
// Every branch that touches the product set or a filter dimension ends in a
// full recompute of the view from the complete set, so filters compose
// correctly regardless of the order they were applied in.
func reduce(s state, a action) state {
	switch a.kind {
	case actionProductsLoaded:
		s.products = a.products
		s.err = false
		s.errMessage = ""

	case actionLoadFailed:
		s.products = nil
		s.err = true
		s.errMessage = a.message

	case actionSetCategoryFilter:
		s.filters.Category = optional(a.category)
		s.filters.SubCategory = optional(a.subCategory)

	case actionSetPriceFilter:
		price := a.price
		s.filters.Price = &price

	case actionClearFilters:
		s.filters = FilterState{}
	}

	s.view = filter(s.products, s.filters)
	return s
}

// filter applies every active predicate, AND-ed, over the full product set.
// Source order is preserved.
func filter(products []product.Product, f FilterState) []product.Product {
	view := make([]product.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			view = append(view, p)
		}
	}
	return view
}

func matches(p product.Product, f FilterState) bool {
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.SubCategory != nil && p.SubCategory != *f.SubCategory {
		return false
	}
	if f.Price != nil {
		dp := p.DiscountedPrice()
		if dp < f.Price.Min || dp > f.Price.Max {
			return false
		}
	}
	return true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
