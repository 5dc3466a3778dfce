package mocks

import (
	"context"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) OrderPlaced(ctx context.Context, order models.Order, deliveryMessage string) error {
	ret := m.Called(ctx, order, deliveryMessage)
	return ret.Error(0)
}
