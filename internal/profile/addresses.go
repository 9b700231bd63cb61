package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Address book errors.
var (
	ErrAddressIncomplete = errors.New("profile: title, name and address are required")
	ErrDuplicateAddress  = errors.New("profile: an address with that title or address already exists")
	ErrAddressNotFound   = errors.New("profile: address not found")
)

// Address is one saved delivery destination.
type Address struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Guide      string    `json:"guide,omitempty"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}

// AddressBook keeps the customer's saved destinations, most recently
// used first, under KeySavedAddresses.
type AddressBook struct {
	store Store
	now   func() time.Time
}

// NewAddressBook returns an address book backed by store.
func NewAddressBook(store Store) *AddressBook {
	return &AddressBook{store: store, now: time.Now}
}

// List returns all saved addresses, most recently used first. An empty
// book is not an error.
func (b *AddressBook) List(ctx context.Context) ([]Address, error) {
	raw, err := b.store.Get(ctx, KeySavedAddresses)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var addresses []Address
	if err := json.Unmarshal([]byte(raw), &addresses); err != nil {
		return nil, fmt.Errorf("profile: failed to parse saved addresses: %w", err)
	}
	sortByLastUsed(addresses)
	return addresses, nil
}

// Save stores a new address, or updates the entry with the same ID.
// Title, name and address are mandatory, and a different entry with
// the same normalized title or address is rejected as a duplicate.
func (b *AddressBook) Save(ctx context.Context, addr Address) (Address, error) {
	addr.Title = strings.TrimSpace(addr.Title)
	addr.Name = strings.TrimSpace(addr.Name)
	addr.Address = strings.TrimSpace(addr.Address)
	addr.Guide = strings.TrimSpace(addr.Guide)
	if addr.Title == "" || addr.Name == "" || addr.Address == "" {
		return Address{}, ErrAddressIncomplete
	}

	addresses, err := b.List(ctx)
	if err != nil {
		return Address{}, err
	}
	for _, existing := range addresses {
		if existing.ID == addr.ID {
			continue
		}
		if normalize(existing.Title) == normalize(addr.Title) || normalize(existing.Address) == normalize(addr.Address) {
			return Address{}, ErrDuplicateAddress
		}
	}

	addr.LastUsedAt = b.now()
	updated := false
	for i := range addresses {
		if addresses[i].ID == addr.ID {
			addresses[i] = addr
			updated = true
			break
		}
	}
	if !updated {
		if addr.ID == "" {
			addr.ID = strconv.FormatInt(b.now().UnixNano(), 10)
		}
		addresses = append(addresses, addr)
	}

	if err := b.persist(ctx, addresses); err != nil {
		return Address{}, err
	}
	return addr, nil
}

// Delete removes a saved address by ID.
func (b *AddressBook) Delete(ctx context.Context, id string) error {
	addresses, err := b.List(ctx)
	if err != nil {
		return err
	}
	for i := range addresses {
		if addresses[i].ID == id {
			addresses = append(addresses[:i], addresses[i+1:]...)
			return b.persist(ctx, addresses)
		}
	}
	return ErrAddressNotFound
}

// Touch marks an address as just used and returns it, so repeat
// customers see their latest destination first.
func (b *AddressBook) Touch(ctx context.Context, id string) (Address, error) {
	addresses, err := b.List(ctx)
	if err != nil {
		return Address{}, err
	}
	for i := range addresses {
		if addresses[i].ID == id {
			addresses[i].LastUsedAt = b.now()
			if err := b.persist(ctx, addresses); err != nil {
				return Address{}, err
			}
			return addresses[i], nil
		}
	}
	return Address{}, ErrAddressNotFound
}

func (b *AddressBook) persist(ctx context.Context, addresses []Address) error {
	sortByLastUsed(addresses)
	raw, err := json.Marshal(addresses)
	if err != nil {
		return fmt.Errorf("profile: failed to encode saved addresses: %w", err)
	}
	return b.store.Set(ctx, KeySavedAddresses, string(raw))
}

func sortByLastUsed(addresses []Address) {
	sort.SliceStable(addresses, func(i, j int) bool {
		return addresses[i].LastUsedAt.After(addresses[j].LastUsedAt)
	})
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
