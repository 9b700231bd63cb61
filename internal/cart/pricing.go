package cart

import (
	"errors"

	"menu-ordering-service/internal/catalog"
)

// ErrUnpriced marks a catalog entry that cannot resolve a price for the
// requested size. The customization flows treat it as "cannot submit";
// a zero-priced line must never reach the cart.
var ErrUnpriced = errors.New("cart: product has no price for the requested size")

// UnitPrice resolves the unit price of a simple line: the size-specific
// price when the product defines one, the base price otherwise.
func UnitPrice(p *catalog.Product, size string) (float64, error) {
	price, ok := p.PriceFor(size)
	if !ok {
		return 0, ErrUnpriced
	}
	return price, nil
}

// CombinedUnitPrice prices a half-and-half line: each flavor contributes
// half of its own price for the shared size, so the unit price is the
// arithmetic mean of the two individual size prices. No intermediate
// rounding happens here; currency rounding belongs to the presentation
// boundary.
func CombinedUnitPrice(a, b *catalog.Product, size string) (float64, error) {
	pa, err := UnitPrice(a, size)
	if err != nil {
		return 0, err
	}
	pb, err := UnitPrice(b, size)
	if err != nil {
		return 0, err
	}
	return pa/2 + pb/2, nil
}
