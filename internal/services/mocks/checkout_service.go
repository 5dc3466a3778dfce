package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) DeliveryMode() models.DeliveryMode {
	ret := m.Called()
	return ret.Get(0).(models.DeliveryMode)
}

func (m *CheckoutService) Status() models.CheckoutStatus {
	ret := m.Called()
	return ret.Get(0).(models.CheckoutStatus)
}

func (m *CheckoutService) Begin(ctx context.Context) (models.CheckoutStatus, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(models.CheckoutStatus), ret.Error(1)
}

func (m *CheckoutService) Submit(ctx context.Context, form models.CheckoutForm) (*models.CheckoutResult, error) {
	ret := m.Called(ctx, form)

	var r0 *models.CheckoutResult
	if v, ok := ret.Get(0).(*models.CheckoutResult); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (m *CheckoutService) Reset() models.CheckoutStatus {
	ret := m.Called()
	return ret.Get(0).(models.CheckoutStatus)
}
