package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) Load(ctx context.Context) models.CartSummary {
	ret := m.Called(ctx)
	return ret.Get(0).(models.CartSummary)
}

func (m *CartService) Summary(ctx context.Context) models.CartSummary {
	ret := m.Called(ctx)
	return ret.Get(0).(models.CartSummary)
}

func (m *CartService) Snapshot(ctx context.Context) models.Cart {
	ret := m.Called(ctx)
	return ret.Get(0).(models.Cart)
}

func (m *CartService) Add(ctx context.Context, product models.Product) (models.CartSummary, error) {
	ret := m.Called(ctx, product)
	return ret.Get(0).(models.CartSummary), ret.Error(1)
}

func (m *CartService) AddByID(ctx context.Context, productID string) (models.CartSummary, error) {
	ret := m.Called(ctx, productID)
	return ret.Get(0).(models.CartSummary), ret.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, productID string, delta int) (models.CartSummary, error) {
	ret := m.Called(ctx, productID, delta)
	return ret.Get(0).(models.CartSummary), ret.Error(1)
}

func (m *CartService) Remove(ctx context.Context, productID string) (models.CartSummary, error) {
	ret := m.Called(ctx, productID)
	return ret.Get(0).(models.CartSummary), ret.Error(1)
}

func (m *CartService) Clear(ctx context.Context) error {
	ret := m.Called(ctx)
	return ret.Error(0)
}

func (m *CartService) Settle(ctx context.Context, placed models.Cart) error {
	ret := m.Called(ctx, placed)
	return ret.Error(0)
}
