package product

// Image is a stored image reference for a product.
type Image struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// Product is immutable once fetched. Optional backend fields (discount,
// subCategory) decode to their zero values, so a missing discount is 0 and
// the rest of the engine never deals with absent fields.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	SubCategory     string  `json:"subCategory"`
	SKU             string  `json:"sku"`
	Price           float64 `json:"price"`
	Discount        float64 `json:"discount"`
	QuantityInStock int     `json:"quantityInStock"`
	Images          []Image `json:"images"`
}

// DiscountedPrice applies the percentage discount to the list price.
func (p Product) DiscountedPrice() float64 {
	return p.Price - p.Price*p.Discount/100
}

// Validate reports whether the product is well-formed. Products are checked
// at the repository-client boundary so the stores can trust what they hold.
func (p Product) Validate() error {
	switch {
	case p.ID == "":
		return ErrMissingID
	case p.Price < 0:
		return ErrNegativePrice
	case p.Discount < 0 || p.Discount > 100:
		return ErrInvalidDiscount
	case p.QuantityInStock < 0:
		return ErrNegativeStock
	}
	return nil
}
