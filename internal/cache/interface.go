package cache

import (
	"context"
	"strings"
	"time"
)

// Cache holds short-lived copies of backend responses. Unlike storage.Store,
// every entry expires.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, parts ...string) string {
	return prefix + ":" + strings.Join(parts, ":")
}

const (
	CategoriesKeyPrefix = "categories"
	ProductsKeyPrefix   = "products"
	ProductKeyPrefix    = "product"
)
