// Package profile persists customer identity fields across sessions:
// a primary durable store plus a cookie-like fallback, each checked
// independently. Cart contents are deliberately never persisted.
package profile

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("profile: value not found")

// Storage keys. They match the legacy web client's localStorage names
// so imported profile dumps stay readable.
const (
	KeyCustomerName    = "cartCustomerName"
	KeyCustomerAddress = "cartCustomerAddress"
	KeySavedAddresses  = "cartSavedAddresses"
	KeyOrderNote       = "cartNote"
	KeyPayment         = "cartPayment"
)

// Store is a durable key-value backend for profile fields.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
