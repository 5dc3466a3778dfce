package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/cache"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
)

type cachedCatalogAPI struct {
	api   CatalogAPI
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedCatalogAPI serves catalog reads from c when possible. Cache failures
// are logged and fall through to the backend; backend errors are never cached.
func NewCachedCatalogAPI(api CatalogAPI, c cache.Cache, ttl time.Duration) CatalogAPI {
	return &cachedCatalogAPI{api: api, cache: c, ttl: ttl}
}

func (c *cachedCatalogAPI) ListCategories(ctx context.Context) ([]models.Category, error) {

	key := cache.Key(cache.CategoriesKeyPrefix, "all")

	var categories []models.Category
	if c.lookup(ctx, key, &categories) {
		return categories, nil
	}

	categories, err := c.api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, categories)

	return categories, nil
}

func (c *cachedCatalogAPI) ListProducts(ctx context.Context, category, brand string) ([]models.Product, error) {

	key := cache.Key(cache.ProductsKeyPrefix, strings.TrimSpace(category), strings.TrimSpace(brand))

	var products []models.Product
	if c.lookup(ctx, key, &products) {
		return products, nil
	}

	products, err := c.api.ListProducts(ctx, category, brand)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, products)

	return products, nil
}

func (c *cachedCatalogAPI) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, id)

	var product models.Product
	if c.lookup(ctx, key, &product) {
		return &product, nil
	}

	found, err := c.api.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, found)

	return found, nil
}

func (c *cachedCatalogAPI) lookup(ctx context.Context, key string, dest any) bool {

	hit, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))
		return false
	}

	return hit
}

func (c *cachedCatalogAPI) store(ctx context.Context, key string, value any) {
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
