package cart

import (
	"errors"
	"sync"

	"menu-ordering-service/internal/catalog"
)

// ErrBadSelection is returned when a line is built from anything other
// than one base product (simple) or two (half-and-half).
var ErrBadSelection = errors.New("cart: a line needs one or two base products")

// Selection is the ephemeral customization result handed to the Engine:
// produced by a customization flow, consumed once.
type Selection struct {
	Size     string
	Options  []string
	Note     string
	Quantity int
}

// Item is one priced, quantified entry in the cart, keyed by its
// derived composite identity.
type Item struct {
	LineID      string
	DisplayName string
	UnitPrice   float64
	Quantity    int
	Note        string
	Attributes  []string
}

// Engine owns the ordered line-item sequence and is its only mutator.
// All other components hold read-only snapshots from Items. A single
// mutex keeps every operation atomic, so the merge-or-swap guarantees
// hold even on a concurrent runtime.
type Engine struct {
	mu    sync.Mutex
	items []Item
}

// NewEngine returns an empty cart engine.
func NewEngine() *Engine {
	return &Engine{}
}

// resolve turns base product(s) plus a selection into the derived parts
// of a line: identity, label, unit price, and provenance attributes.
func resolve(products []*catalog.Product, sel Selection) (Item, error) {
	switch len(products) {
	case 1:
		p := products[0]
		price, err := UnitPrice(p, sel.Size)
		if err != nil {
			return Item{}, err
		}
		return Item{
			LineID:      LineID([]string{p.ID}, sel.Size, sel.Options),
			DisplayName: DisplayName(p, sel.Size, sel.Options),
			UnitPrice:   price,
			Attributes:  append([]string(nil), p.Attributes...),
		}, nil
	case 2:
		a, b := products[0], products[1]
		price, err := CombinedUnitPrice(a, b, sel.Size)
		if err != nil {
			return Item{}, err
		}
		return Item{
			LineID:      LineID([]string{a.ID, b.ID}, sel.Size, nil),
			DisplayName: CombinedDisplayName(a, b, sel.Size),
			UnitPrice:   price,
			Attributes:  []string{a.Name, b.Name},
		}, nil
	default:
		return Item{}, ErrBadSelection
	}
}

// Add inserts a new line or merges into an existing one. A repeat add
// whose selection normalizes to an already-present line id increments
// that line's quantity and leaves its note untouched, so quick-add taps
// never overwrite a previously entered note. Returns the line id.
func (e *Engine) Add(products []*catalog.Product, sel Selection) (string, error) {
	line, err := resolve(products, sel)
	if err != nil {
		return "", err
	}
	qty := sel.Quantity
	if qty < 1 {
		qty = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if i := e.index(line.LineID); i >= 0 {
		e.items[i].Quantity += qty
		return line.LineID, nil
	}
	line.Quantity = qty
	line.Note = sel.Note
	e.items = append(e.items, line)
	return line.LineID, nil
}

// Remove deletes a line. Removing an id that is no longer present is a
// no-op: stale UI references are expected, not errors.
func (e *Engine) Remove(lineID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.remove(lineID)
}

// SetQuantity overwrites a line's quantity. Driving it below one
// removes the line entirely. Unknown ids are ignored.
func (e *Engine) SetQuantity(lineID string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if quantity < 1 {
		e.remove(lineID)
		return
	}
	if i := e.index(lineID); i >= 0 {
		e.items[i].Quantity = quantity
	}
}

// SetNote overwrites the free-text note of a line (last write wins).
// Unknown ids are ignored.
func (e *Engine) SetNote(lineID, note string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.index(lineID); i >= 0 {
		e.items[i].Note = note
	}
}

// Replace swaps an existing line for a re-customized one, atomically:
// the old line goes away and the new selection lands with the supplied
// quantity (not additive). When the new identity collides with another
// line already in the cart the two merge by summing quantities, so line
// ids stay unique. The replaced line's position is preserved when the
// new identity is fresh.
func (e *Engine) Replace(oldLineID string, products []*catalog.Product, sel Selection) (string, error) {
	line, err := resolve(products, sel)
	if err != nil {
		return "", err
	}
	qty := sel.Quantity
	if qty < 1 {
		qty = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	oldIdx := e.index(oldLineID)

	if line.LineID == oldLineID && oldIdx >= 0 {
		e.items[oldIdx].Quantity = qty
		e.items[oldIdx].Note = sel.Note
		return line.LineID, nil
	}

	if i := e.index(line.LineID); i >= 0 {
		e.items[i].Quantity += qty
		if oldIdx >= 0 {
			e.items = append(e.items[:oldIdx], e.items[oldIdx+1:]...)
		}
		return line.LineID, nil
	}

	line.Quantity = qty
	line.Note = sel.Note
	if oldIdx >= 0 {
		e.items[oldIdx] = line
	} else {
		e.items = append(e.items, line)
	}
	return line.LineID, nil
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = nil
}

// Items returns a read-only snapshot of the line sequence in insertion
// order. Mutations must go through the Engine's operations.
func (e *Engine) Items() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Item, len(e.items))
	copy(out, e.items)
	for i := range out {
		out[i].Attributes = append([]string(nil), e.items[i].Attributes...)
	}
	return out
}

// Get returns a copy of one line by id.
func (e *Engine) Get(lineID string) (Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.index(lineID); i >= 0 {
		item := e.items[i]
		item.Attributes = append([]string(nil), item.Attributes...)
		return item, true
	}
	return Item{}, false
}

// Total is the derived aggregate Σ(unitPrice × quantity). Recomputed on
// demand so it can never drift from the line sequence.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total float64
	for i := range e.items {
		total += e.items[i].UnitPrice * float64(e.items[i].Quantity)
	}
	return total
}

// ItemCount is the derived aggregate Σ(quantity) over all lines.
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	var count int
	for i := range e.items {
		count += e.items[i].Quantity
	}
	return count
}

// index returns the position of lineID, or -1. Caller holds the lock.
func (e *Engine) index(lineID string) int {
	for i := range e.items {
		if e.items[i].LineID == lineID {
			return i
		}
	}
	return -1
}

// remove drops lineID if present. Caller holds the lock.
func (e *Engine) remove(lineID string) {
	if i := e.index(lineID); i >= 0 {
		e.items = append(e.items[:i], e.items[i+1:]...)
	}
}
