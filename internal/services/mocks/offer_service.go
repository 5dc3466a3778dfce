package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/mock"
)

type OfferService struct {
	mock.Mock
}

func (m *OfferService) Options() models.OfferOptions {
	ret := m.Called()
	return ret.Get(0).(models.OfferOptions)
}

func (m *OfferService) Submit(ctx context.Context, req models.OfferRequest) error {
	ret := m.Called(ctx, req)
	return ret.Error(0)
}
