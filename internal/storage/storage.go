package storage

import (
	"context"
	"errors"
)

// Store is the durable key/value store behind the cart and the local order
// history. Values are JSON encoded; a missing key is reported as found=false.
type Store interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	CartKey        = "cart"
	LocalOrdersKey = "local_orders"
)

var ErrInvalidKey = errors.New("storage key must not be empty")

func Key(namespace string, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}
