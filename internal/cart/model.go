package cart

import "storefront-core/internal/product"

// LineItem is one cart row per distinct product id.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	UnitPrice float64 `json:"unitPrice"`
	Discount  float64 `json:"discount"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// UnitTotal is the discounted price of one unit.
func (li LineItem) UnitTotal() float64 {
	return li.UnitPrice - li.UnitPrice*li.Discount/100
}

// Snapshot is the derived cart state the UI renders. Totals are recomputed
// from the line-item set after every mutation, never adjusted incrementally.
type Snapshot struct {
	Items         []LineItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	DiscountTotal float64    `json:"discountTotal"`
	Total         float64    `json:"total"`
}

func newLineItem(p product.Product) LineItem {
	item := LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		UnitPrice: p.Price,
		Discount:  p.Discount,
		Quantity:  1,
	}
	if len(p.Images) > 0 {
		item.Image = p.Images[0].URL
	}
	return item
}
