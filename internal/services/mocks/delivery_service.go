package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/mock"
)

type DeliveryService struct {
	mock.Mock
}

func (m *DeliveryService) Mode() models.DeliveryMode {
	ret := m.Called()
	return ret.Get(0).(models.DeliveryMode)
}

func (m *DeliveryService) Zones(ctx context.Context) ([]models.DeliveryZone, error) {
	ret := m.Called(ctx)

	var r0 []models.DeliveryZone
	if v, ok := ret.Get(0).([]models.DeliveryZone); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *DeliveryService) LookupDate(ctx context.Context, city string) (*models.DeliveryDateInfo, error) {
	ret := m.Called(ctx, city)

	var r0 *models.DeliveryDateInfo
	if v, ok := ret.Get(0).(*models.DeliveryDateInfo); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
