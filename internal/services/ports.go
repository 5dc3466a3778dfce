package service

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
)

// The narrow slices of the backend client each service depends on.

type CatalogAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context, category, brand string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

type DeliveryAPI interface {
	HasBackend() bool
	ListDeliveryZones(ctx context.Context) ([]models.DeliveryZone, error)
	DeliveryDate(ctx context.Context, city string) (*models.DeliveryDateInfo, error)
}

type OrderAPI interface {
	HasBackend() bool
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context, email string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

type OfferAPI interface {
	HasBackend() bool
	SubmitOfferRequest(ctx context.Context, req *models.OfferRequest) error
}
