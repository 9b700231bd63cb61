package flow

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"menu-ordering-service/internal/cart"
	"menu-ordering-service/internal/catalog"
)

// submission is the shape handed to the engine, validated before any
// cart mutation happens.
type submission struct {
	Size     string
	Options  []string
	Note     string
	Quantity int `validate:"required,gte=1"`
}

// Simple is a single-product customization session: pick a size, toggle
// modifier options up to the product's cap, attach a note, choose a
// quantity, then submit to the cart engine.
type Simple struct {
	product  *catalog.Product
	size     string
	options  []string
	note     string
	quantity int
	state    State
	validate *validator.Validate
}

// NewSimple opens a session for p, pre-selecting the first available
// size and seeding quantity 1, empty note, empty options.
func NewSimple(p *catalog.Product) *Simple {
	return &Simple{
		product:  p,
		size:     p.DefaultSize(),
		quantity: 1,
		state:    Open,
		validate: validator.New(),
	}
}

// Product returns the base catalog entry being customized.
func (f *Simple) Product() *catalog.Product { return f.product }

// Size returns the currently selected size label.
func (f *Simple) Size() string { return f.size }

// Options returns the currently selected option labels.
func (f *Simple) Options() []string {
	return append([]string(nil), f.options...)
}

// Note returns the free-text note.
func (f *Simple) Note() string { return f.note }

// Quantity returns the selected quantity.
func (f *Simple) Quantity() int { return f.quantity }

// SelectSize replaces the prior size selection (single-select). Sizes
// outside the product's ladder are rejected.
func (f *Simple) SelectSize(size string) error {
	if f.state != Open {
		return ErrClosed
	}
	for _, s := range f.product.Sizes {
		if s == size {
			f.size = size
			return nil
		}
	}
	if _, ok := f.product.SizePrices[size]; ok {
		f.size = size
		return nil
	}
	return ErrUnknownSize
}

// ToggleOption adds or removes an option from the selection set. A
// select beyond the product's cap is rejected with no state change.
// Reports whether the selection changed.
func (f *Simple) ToggleOption(option string) bool {
	if f.state != Open {
		return false
	}
	known := false
	for _, o := range f.product.Options {
		if o == option {
			known = true
			break
		}
	}
	if !known {
		return false
	}
	for i, o := range f.options {
		if o == option {
			f.options = append(f.options[:i], f.options[i+1:]...)
			return true
		}
	}
	if f.product.MaxOptions > 0 && len(f.options) >= f.product.MaxOptions {
		return false
	}
	f.options = append(f.options, option)
	return true
}

// SetNote attaches a free-text note to the line being built.
func (f *Simple) SetNote(note string) {
	if f.state == Open {
		f.note = note
	}
}

// SetQuantity updates the quantity, clamped to a minimum of one.
func (f *Simple) SetQuantity(quantity int) {
	if f.state != Open {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	f.quantity = quantity
}

// UnitPrice resolves the price of the current selection.
func (f *Simple) UnitPrice() (float64, error) {
	return cart.UnitPrice(f.product, f.size)
}

// CanSubmit reports the guard condition blocking submission, or nil.
// Products that define options demand exactly MaxOptions selected, and
// unresolved pricing blocks submission too: a malformed catalog entry
// must never become a zero-priced line.
func (f *Simple) CanSubmit() error {
	if f.state != Open {
		return ErrClosed
	}
	if f.product.HasOptions() && len(f.options) != f.product.MaxOptions {
		return ErrOptionsIncomplete
	}
	if _, err := f.UnitPrice(); err != nil {
		return err
	}
	return nil
}

// Submit validates the session and delegates to Engine.Add. The flow
// itself never touches the line sequence directly.
func (f *Simple) Submit(engine *cart.Engine) (string, error) {
	return f.submit(engine, "")
}

// SubmitReplace validates the session and swaps it in for an existing
// cart line via Engine.Replace, used by the edit-existing-line flow.
func (f *Simple) SubmitReplace(engine *cart.Engine, oldLineID string) (string, error) {
	return f.submit(engine, oldLineID)
}

func (f *Simple) submit(engine *cart.Engine, oldLineID string) (string, error) {
	if err := f.CanSubmit(); err != nil {
		return "", err
	}
	sub := submission{Size: f.size, Options: f.Options(), Note: f.note, Quantity: f.quantity}
	if err := f.validate.Struct(sub); err != nil {
		return "", fmt.Errorf("flow: invalid submission: %w", err)
	}

	sel := cart.Selection{Size: sub.Size, Options: sub.Options, Note: sub.Note, Quantity: sub.Quantity}
	var (
		lineID string
		err    error
	)
	if oldLineID == "" {
		lineID, err = engine.Add([]*catalog.Product{f.product}, sel)
	} else {
		lineID, err = engine.Replace(oldLineID, []*catalog.Product{f.product}, sel)
	}
	if err != nil {
		return "", err
	}
	f.state = Submitted
	return lineID, nil
}

// Cancel discards the in-progress selection. No cart mutation has
// happened yet, so cancelling is always safe.
func (f *Simple) Cancel() Outcome {
	if f.state == Open {
		f.state = Cancelled
	}
	return Outcome{Reason: ReasonCancel}
}
