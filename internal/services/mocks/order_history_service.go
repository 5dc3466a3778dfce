package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderHistoryService struct {
	mock.Mock
}

func (m *OrderHistoryService) Mode() models.HistoryMode {
	ret := m.Called()
	return ret.Get(0).(models.HistoryMode)
}

func (m *OrderHistoryService) Record(ctx context.Context, order models.Order) error {
	ret := m.Called(ctx, order)
	return ret.Error(0)
}

func (m *OrderHistoryService) List(ctx context.Context) ([]models.Order, error) {
	ret := m.Called(ctx)

	var r0 []models.Order
	if v, ok := ret.Get(0).([]models.Order); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *OrderHistoryService) Groups(ctx context.Context) ([]models.OrderGroup, error) {
	ret := m.Called(ctx)

	var r0 []models.OrderGroup
	if v, ok := ret.Get(0).([]models.OrderGroup); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *OrderHistoryService) ByEmail(ctx context.Context, email string) ([]models.Order, error) {
	ret := m.Called(ctx, email)

	var r0 []models.Order
	if v, ok := ret.Get(0).([]models.Order); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *OrderHistoryService) Get(ctx context.Context, id string) (*models.Order, error) {
	ret := m.Called(ctx, id)

	var r0 *models.Order
	if v, ok := ret.Get(0).(*models.Order); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
