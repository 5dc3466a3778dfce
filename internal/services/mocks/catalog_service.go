package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	ret := m.Called(ctx)

	var r0 []models.Category
	if v, ok := ret.Get(0).([]models.Category); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *CatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	ret := m.Called(ctx, filter)

	var r0 []models.Product
	if v, ok := ret.Get(0).([]models.Product); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	ret := m.Called(ctx, id)

	var r0 *models.Product
	if v, ok := ret.Get(0).(*models.Product); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
