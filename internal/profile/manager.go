package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// SavedPayment is the customer's last chosen payment method, persisted
// under KeyPayment so a returning customer starts from it.
type SavedPayment struct {
	Method      string  `json:"method"`
	Bank        string  `json:"bank,omitempty"`
	NeedsChange bool    `json:"needsChange,omitempty"`
	BillAmount  float64 `json:"billAmount,omitempty"`
}

// Manager reads profile fields from the primary store with the
// cookie-like fallback as a second, independent presence check, and
// writes both best-effort. Persistence is fire-and-forget: failures are
// logged, never surfaced, and never block an operation.
type Manager struct {
	primary  Store
	fallback Store
}

// NewManager wires the primary and fallback stores. fallback may be nil.
func NewManager(primary, fallback Store) *Manager {
	return &Manager{primary: primary, fallback: fallback}
}

// Get returns the stored value for key, trying the primary store first
// and the fallback second. Absence in both means "not yet set".
func (m *Manager) Get(ctx context.Context, key string) (string, bool) {
	if value, err := m.primary.Get(ctx, key); err == nil {
		return value, true
	} else if !errors.Is(err, ErrNotFound) {
		log.Printf("WARN: profile primary read for %q failed: %v", key, err)
	}
	if m.fallback == nil {
		return "", false
	}
	value, err := m.fallback.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("WARN: profile fallback read for %q failed: %v", key, err)
		}
		return "", false
	}
	return value, true
}

// Set writes the value to both stores. An empty value clears the field
// instead: its stored copies are removed from both backends.
func (m *Manager) Set(ctx context.Context, key, value string) {
	if value == "" {
		m.Delete(ctx, key)
		return
	}
	if err := m.primary.Set(ctx, key, value); err != nil {
		log.Printf("WARN: profile primary write for %q failed: %v", key, err)
	}
	if m.fallback != nil {
		if err := m.fallback.Set(ctx, key, value); err != nil {
			log.Printf("WARN: profile fallback write for %q failed: %v", key, err)
		}
	}
}

// Delete removes the field from both stores.
func (m *Manager) Delete(ctx context.Context, key string) {
	if err := m.primary.Delete(ctx, key); err != nil {
		log.Printf("WARN: profile primary delete for %q failed: %v", key, err)
	}
	if m.fallback != nil {
		if err := m.fallback.Delete(ctx, key); err != nil {
			log.Printf("WARN: profile fallback delete for %q failed: %v", key, err)
		}
	}
}

// CustomerName returns the persisted customer name, if set.
func (m *Manager) CustomerName(ctx context.Context) (string, bool) {
	return m.Get(ctx, KeyCustomerName)
}

// SetCustomerName persists (or, when empty, clears) the customer name.
func (m *Manager) SetCustomerName(ctx context.Context, name string) {
	m.Set(ctx, KeyCustomerName, name)
}

// CustomerAddress returns the persisted delivery address, if set.
func (m *Manager) CustomerAddress(ctx context.Context) (string, bool) {
	return m.Get(ctx, KeyCustomerAddress)
}

// SetCustomerAddress persists (or clears) the delivery address.
func (m *Manager) SetCustomerAddress(ctx context.Context, address string) {
	m.Set(ctx, KeyCustomerAddress, address)
}

// OrderNote returns the persisted order note, if set.
func (m *Manager) OrderNote(ctx context.Context) (string, bool) {
	return m.Get(ctx, KeyOrderNote)
}

// SetOrderNote persists (or clears) the order note.
func (m *Manager) SetOrderNote(ctx context.Context, note string) {
	m.Set(ctx, KeyOrderNote, note)
}

// LastPayment returns the customer's last saved payment method.
func (m *Manager) LastPayment(ctx context.Context) (SavedPayment, bool) {
	raw, ok := m.Get(ctx, KeyPayment)
	if !ok {
		return SavedPayment{}, false
	}
	var p SavedPayment
	if err := json.Unmarshal([]byte(raw), &p); err != nil || p.Method == "" {
		return SavedPayment{}, false
	}
	return p, true
}

// SavePayment persists the last chosen payment method.
func (m *Manager) SavePayment(ctx context.Context, p SavedPayment) {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Printf("WARN: profile payment encode failed: %v", err)
		return
	}
	m.Set(ctx, KeyPayment, string(raw))
}
