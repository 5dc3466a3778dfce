package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

type catalogService struct {
	api CatalogAPI
}

func NewCatalogService(api CatalogAPI) CatalogService {
	return &catalogService{api: api}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		return nil, backendError(err, "Failed to fetch categories")
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

// ListProducts lets the backend filter by category and brand, then applies the
// free-text query locally.
func (s *catalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {

	products, err := s.api.ListProducts(ctx, filter.Category, filter.Brand)
	if err != nil {
		return nil, backendError(err, "Failed to fetch products")
	}

	if products == nil {
		products = []models.Product{}
	}

	filtered := models.FilterProducts(products, filter.Query)

	middleware.LoggerFromContext(ctx).Debug("Products listed",
		slog.String("category", filter.Category),
		slog.String("brand", filter.Brand),
		slog.Int("fetched", len(products)),
		slog.Int("returned", len(filtered)),
	)

	return filtered, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.BadRequestError("Product ID is required")
	}

	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil, errors.NotFoundError("Producto no encontrado").WithError(err)
		}
		return nil, backendError(err, "Failed to fetch product")
	}

	return product, nil
}
