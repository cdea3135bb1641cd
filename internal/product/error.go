package product

import "errors"

var (
	// -- Validation --
	ErrMissingID       = errors.New("product id is missing")
	ErrNegativePrice   = errors.New("product price is negative")
	ErrInvalidDiscount = errors.New("product discount outside 0-100")
	ErrNegativeStock   = errors.New("product stock is negative")

	// -- Fetch failures --
	ErrFetchFailure  = errors.New("product fetch failed")
	ErrSearchFailure = errors.New("product search failed")
)
