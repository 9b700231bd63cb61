package flow

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"menu-ordering-service/internal/cart"
	"menu-ordering-service/internal/catalog"
)

// maxFlavors is the hard cap on flavors sharing one unit.
const maxFlavors = 2

// Combined is a half-and-half customization session: two flavors share
// one unit at a common size, priced as the mean of their individual
// size prices. The smallest size tier is unavailable for combined
// items.
type Combined struct {
	sizes    []string
	size     string
	flavors  []*catalog.Product
	note     string
	quantity int
	seed     *catalog.Product
	state    State
	validate *validator.Validate
}

// NewCombined opens a combined session over the given size ladder
// (smallest tier first). The first tier is dropped from the shared-size
// choices. seed optionally pre-selects one flavor, for sessions entered
// by upgrading a simple selection.
func NewCombined(sizeLadder []string, seed *catalog.Product) *Combined {
	sizes := append([]string(nil), sizeLadder...)
	if len(sizes) > 1 {
		sizes = sizes[1:]
	}
	f := &Combined{
		sizes:    sizes,
		quantity: 1,
		seed:     seed,
		state:    Open,
		validate: validator.New(),
	}
	if len(sizes) > 0 {
		f.size = sizes[0]
	}
	if seed != nil {
		f.flavors = append(f.flavors, seed)
	}
	return f
}

// AllowedSizes returns the shared sizes a combined item may use.
func (f *Combined) AllowedSizes() []string {
	return append([]string(nil), f.sizes...)
}

// Size returns the currently selected shared size.
func (f *Combined) Size() string { return f.size }

// Flavors returns the currently selected flavors in selection order.
func (f *Combined) Flavors() []*catalog.Product {
	return append([]*catalog.Product(nil), f.flavors...)
}

// Quantity returns the selected quantity.
func (f *Combined) Quantity() int { return f.quantity }

// SelectSize replaces the shared size. Sizes outside the restricted
// subset (including the excluded smallest tier) are rejected.
func (f *Combined) SelectSize(size string) error {
	if f.state != Open {
		return ErrClosed
	}
	for _, s := range f.sizes {
		if s == size {
			f.size = size
			return nil
		}
	}
	return ErrUnknownSize
}

// ToggleFlavor selects or deselects a flavor. Selecting an already
// chosen flavor removes it; selecting a third is rejected with no state
// change. Reports whether the selection changed.
func (f *Combined) ToggleFlavor(p *catalog.Product) bool {
	if f.state != Open || p == nil {
		return false
	}
	for i, fl := range f.flavors {
		if fl.ID == p.ID {
			f.flavors = append(f.flavors[:i], f.flavors[i+1:]...)
			return true
		}
	}
	if len(f.flavors) >= maxFlavors {
		return false
	}
	f.flavors = append(f.flavors, p)
	return true
}

// SetNote attaches a free-text note to the line being built.
func (f *Combined) SetNote(note string) {
	if f.state == Open {
		f.note = note
	}
}

// SetQuantity updates the quantity, clamped to a minimum of one.
func (f *Combined) SetQuantity(quantity int) {
	if f.state != Open {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	f.quantity = quantity
}

// UnitPrice resolves the combined price of the current selection.
func (f *Combined) UnitPrice() (float64, error) {
	if len(f.flavors) != maxFlavors {
		return 0, ErrFlavorsIncomplete
	}
	return cart.CombinedUnitPrice(f.flavors[0], f.flavors[1], f.size)
}

// CanSubmit reports the guard condition blocking submission, or nil.
func (f *Combined) CanSubmit() error {
	if f.state != Open {
		return ErrClosed
	}
	if len(f.flavors) != maxFlavors {
		return ErrFlavorsIncomplete
	}
	if f.size == "" {
		return ErrUnknownSize
	}
	if _, err := f.UnitPrice(); err != nil {
		return err
	}
	return nil
}

// Submit validates the session and delegates to Engine.Add.
func (f *Combined) Submit(engine *cart.Engine) (string, error) {
	return f.submit(engine, "")
}

// SubmitReplace swaps the combined selection in for an existing cart
// line via Engine.Replace.
func (f *Combined) SubmitReplace(engine *cart.Engine, oldLineID string) (string, error) {
	return f.submit(engine, oldLineID)
}

func (f *Combined) submit(engine *cart.Engine, oldLineID string) (string, error) {
	if err := f.CanSubmit(); err != nil {
		return "", err
	}
	sub := submission{Size: f.size, Note: f.note, Quantity: f.quantity}
	if err := f.validate.Struct(sub); err != nil {
		return "", fmt.Errorf("flow: invalid submission: %w", err)
	}

	sel := cart.Selection{Size: sub.Size, Note: sub.Note, Quantity: sub.Quantity}
	products := []*catalog.Product{f.flavors[0], f.flavors[1]}
	var (
		lineID string
		err    error
	)
	if oldLineID == "" {
		lineID, err = engine.Add(products, sel)
	} else {
		lineID, err = engine.Replace(oldLineID, products, sel)
	}
	if err != nil {
		return "", err
	}
	f.state = Submitted
	return lineID, nil
}

// Cancel discards the in-progress selection. If the session was entered
// by upgrading a single flavor, that flavor rides back on the outcome
// so the caller can reopen the simple flow pre-seeded.
func (f *Combined) Cancel() Outcome {
	if f.state == Open {
		f.state = Cancelled
	}
	return Outcome{Reason: ReasonCancel, Seed: f.seed}
}
