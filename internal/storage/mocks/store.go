package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (m *Store) Get(ctx context.Context, key string, value any) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *Store) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Store) Close() error {
	args := m.Called()
	return args.Error(0)
}
