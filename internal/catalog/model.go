package catalog

import "storefront-core/internal/product"

// PriceRange bounds are inclusive on both ends and compare against the
// discounted price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterState holds the three independent filter dimensions. A nil field
// means "no constraint" on that dimension.
type FilterState struct {
	Category    *string     `json:"category,omitempty"`
	SubCategory *string     `json:"subCategory,omitempty"`
	Price       *PriceRange `json:"price,omitempty"`
}

// Snapshot is the derived state the UI renders. View is always recomputed
// in full from the complete product set, never patched incrementally.
type Snapshot struct {
	View       []product.Product `json:"view"`
	Filters    FilterState       `json:"filters"`
	Err        bool              `json:"error"`
	ErrMessage string            `json:"errorMessage,omitempty"`
}
