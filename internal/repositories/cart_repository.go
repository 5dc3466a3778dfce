package repository

import (
	"context"
	"fmt"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
)

type CartRepository interface {
	Load(ctx context.Context) (models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
	Clear(ctx context.Context) error
}

type cartRepository struct {
	store storage.Store
}

func NewCartRepo(store storage.Store) CartRepository {
	return &cartRepository{store: store}
}

// Load returns the persisted cart, or an empty one when nothing was saved yet.
// Stored lines are normalized before they reach the caller.
func (r *cartRepository) Load(ctx context.Context) (models.Cart, error) {

	var items []models.LineItem

	found, err := r.store.Get(ctx, storage.CartKey, &items)
	if err != nil {
		return models.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}

	if !found {
		return models.NewCart(nil), nil
	}

	return models.NewCart(items), nil
}

func (r *cartRepository) Save(ctx context.Context, cart models.Cart) error {

	items := cart.Items
	if items == nil {
		items = []models.LineItem{}
	}

	if err := r.store.Set(ctx, storage.CartKey, items); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Clear drops the stored cart in a single delete.
func (r *cartRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.CartKey); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
