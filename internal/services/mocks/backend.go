package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/mock"
)

// Backend satisfies every backend port the services depend on.
type Backend struct {
	mock.Mock
}

func (m *Backend) HasBackend() bool {
	ret := m.Called()
	return ret.Bool(0)
}

func (m *Backend) ListCategories(ctx context.Context) ([]models.Category, error) {
	ret := m.Called(ctx)

	var r0 []models.Category
	if v, ok := ret.Get(0).([]models.Category); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListProducts(ctx context.Context, category, brand string) ([]models.Product, error) {
	ret := m.Called(ctx, category, brand)

	var r0 []models.Product
	if v, ok := ret.Get(0).([]models.Product); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *Backend) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	ret := m.Called(ctx, id)

	var r0 *models.Product
	if v, ok := ret.Get(0).(*models.Product); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListDeliveryZones(ctx context.Context) ([]models.DeliveryZone, error) {
	ret := m.Called(ctx)

	var r0 []models.DeliveryZone
	if v, ok := ret.Get(0).([]models.DeliveryZone); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *Backend) DeliveryDate(ctx context.Context, city string) (*models.DeliveryDateInfo, error) {
	ret := m.Called(ctx, city)

	var r0 *models.DeliveryDateInfo
	if v, ok := ret.Get(0).(*models.DeliveryDateInfo); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *Backend) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	ret := m.Called(ctx, req)

	var r0 *models.Order
	if v, ok := ret.Get(0).(*models.Order); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListOrders(ctx context.Context, email string) ([]models.Order, error) {
	ret := m.Called(ctx, email)

	var r0 []models.Order
	if v, ok := ret.Get(0).([]models.Order); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *Backend) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	ret := m.Called(ctx, id)

	var r0 *models.Order
	if v, ok := ret.Get(0).(*models.Order); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *Backend) SubmitOfferRequest(ctx context.Context, req *models.OfferRequest) error {
	ret := m.Called(ctx, req)
	return ret.Error(0)
}
