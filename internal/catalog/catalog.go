package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

// Predefined errors for catalog operations.
var (
	ErrSectionNotFound = errors.New("catalog: section not found")
	ErrProductNotFound = errors.New("catalog: product not found")
)

// Catalog is the read-only, pre-loaded menu hierarchy. It is built once
// by Load and never mutated afterwards; every accessor is safe for
// concurrent readers.
type Catalog struct {
	sections []Section
	byID     map[string]*Product
}

// Load parses a menu document (an array of sections) from r, validates
// every entry, and indexes products by ID. A failed load is terminal
// for the session: the caller gets no catalog and should render a retry
// state instead.
func Load(r io.Reader) (*Catalog, error) {
	var sections []Section
	if err := json.NewDecoder(r).Decode(&sections); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode menu document: %w", err)
	}

	c := &Catalog{
		sections: sections,
		byID:     make(map[string]*Product),
	}

	validate := validator.New()
	for si := range c.sections {
		sec := &c.sections[si]
		for bi := range sec.Subcategories {
			sub := &sec.Subcategories[bi]
			for ci := range sub.Categories {
				cat := &sub.Categories[ci]
				for pi := range cat.Products {
					p := &cat.Products[pi]
					if err := validate.Struct(p); err != nil {
						return nil, fmt.Errorf("catalog: invalid product %q: %w", p.ID, err)
					}
					if _, exists := c.byID[p.ID]; exists {
						return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
					}
					c.byID[p.ID] = p
				}
			}
		}
		// Struct validation recurses, so this also re-checks the leaf
		// entries; products are validated first for the sharper error.
		if err := validate.Struct(sec); err != nil {
			return nil, fmt.Errorf("catalog: invalid section %q: %w", sec.ID, err)
		}
	}
	return c, nil
}

// Empty returns a catalog with no sections. It stands in when the menu
// document cannot be loaded, so the rest of the app stays usable.
func Empty() *Catalog {
	return &Catalog{byID: make(map[string]*Product)}
}

// LoadFile loads the menu document from a file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to open menu document: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Sections returns the top-level menu sections in document order.
func (c *Catalog) Sections() []Section {
	return c.sections
}

// Section looks up a top-level section by ID.
func (c *Catalog) Section(id string) (*Section, error) {
	for i := range c.sections {
		if c.sections[i].ID == id {
			return &c.sections[i], nil
		}
	}
	return nil, ErrSectionNotFound
}

// Product looks up a catalog leaf by its stable ID.
func (c *Catalog) Product(id string) (*Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// ProductsIn returns the flattened product list of one subcategory, the
// shape the customization flows consume (e.g. every traditional pizza
// regardless of which category groups it).
func (c *Catalog) ProductsIn(sectionID, subcategoryID string) ([]*Product, error) {
	sec, err := c.Section(sectionID)
	if err != nil {
		return nil, err
	}
	for i := range sec.Subcategories {
		sub := &sec.Subcategories[i]
		if sub.ID != subcategoryID {
			continue
		}
		var products []*Product
		for ci := range sub.Categories {
			for pi := range sub.Categories[ci].Products {
				products = append(products, &sub.Categories[ci].Products[pi])
			}
		}
		return products, nil
	}
	return nil, ErrSectionNotFound
}
