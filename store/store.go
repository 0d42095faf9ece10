package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Store is a byte-oriented key-value backend holding serialized carts.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

const cartKey = "cart"

// Namespace returns the storage key of one browser session's cart.
func Namespace(session string) string {
	if session == "" {
		return cartKey
	}
	return cartKey + ":" + session
}
