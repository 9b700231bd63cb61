package catalog

// Product is the catalog leaf: one orderable menu entry.
// The json tags correspond to the fields of the menu document.
type Product struct {
	ID          string             `json:"id" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description,omitempty"`
	Image       string             `json:"image,omitempty"`
	Price       float64            `json:"price,omitempty" validate:"gte=0"`
	SizePrices  map[string]float64 `json:"sizePrices,omitempty"`
	Sizes       []string           `json:"sizes,omitempty"`
	Options     []string           `json:"options,omitempty"`
	MaxOptions  int                `json:"maxOptions,omitempty" validate:"gte=0"`
	Attributes  []string           `json:"attributes,omitempty"`
}

// Category groups products inside a subcategory.
type Category struct {
	ID       string    `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Products []Product `json:"products"`
}

// Subcategory groups categories inside a section.
type Subcategory struct {
	ID         string     `json:"id" validate:"required"`
	Name       string     `json:"name" validate:"required"`
	Categories []Category `json:"categories"`
}

// Section is a top-level menu area (pizzas, drinks, desserts, ...).
type Section struct {
	ID            string        `json:"id" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	Image         string        `json:"image,omitempty"`
	Subcategories []Subcategory `json:"subcategories"`
}

// HasSizes reports whether the product is ordered in a specific size.
func (p *Product) HasSizes() bool {
	return len(p.Sizes) > 0 || len(p.SizePrices) > 0
}

// HasOptions reports whether the product requires modifier options
// (exactly MaxOptions of them) before it can be ordered.
func (p *Product) HasOptions() bool {
	return len(p.Options) > 0
}

// PriceFor resolves the unit price for the given size. When the size has
// a dedicated entry in SizePrices that entry wins; otherwise the base
// Price is the fallback. ok is false when the product carries no usable
// price at all, which callers must treat as "cannot order" rather than
// a zero-priced line.
func (p *Product) PriceFor(size string) (price float64, ok bool) {
	if size != "" {
		if sp, found := p.SizePrices[size]; found {
			return sp, true
		}
	}
	if p.Price > 0 {
		return p.Price, true
	}
	return 0, false
}

// DefaultSize returns the first declared size. Map iteration order over
// SizePrices is not stable, so Sizes is authoritative here. Empty when
// the product is size-less.
func (p *Product) DefaultSize() string {
	if len(p.Sizes) > 0 {
		return p.Sizes[0]
	}
	return ""
}
