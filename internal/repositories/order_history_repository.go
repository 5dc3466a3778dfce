package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
)

// OrderHistoryRepository is the device-local list of placed orders, newest first.
type OrderHistoryRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Prepend(ctx context.Context, order models.Order) error
}

type orderHistoryRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewOrderHistoryRepo(store storage.Store) OrderHistoryRepository {
	return &orderHistoryRepository{store: store}
}

func (r *orderHistoryRepository) List(ctx context.Context) ([]models.Order, error) {

	var orders []models.Order

	found, err := r.store.Get(ctx, storage.LocalOrdersKey, &orders)
	if err != nil {
		return nil, fmt.Errorf("failed to load local orders: %w", err)
	}

	if !found || orders == nil {
		return []models.Order{}, nil
	}

	return orders, nil
}

// Prepend stores order ahead of the existing entries. An unreadable history
// is reported rather than overwritten.
func (r *orderHistoryRepository) Prepend(ctx context.Context, order models.Order) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.List(ctx)
	if err != nil {
		return err
	}

	orders := make([]models.Order, 0, len(existing)+1)
	orders = append(orders, order.Snapshot())
	orders = append(orders, existing...)

	if err := r.store.Set(ctx, storage.LocalOrdersKey, orders); err != nil {
		return fmt.Errorf("failed to save local orders: %w", err)
	}

	return nil
}
