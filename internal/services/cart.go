package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	repository "github.com/josumamgar-gif/App-Aqualan/internal/repositories"
)

// CartService owns the on-device cart. Storage is the source of truth: every
// read and mutation starts from the stored snapshot, so writes made through
// another process or replica are never lost. A failed write leaves the stored
// cart exactly as it was.
type CartService interface {
	Load(ctx context.Context) models.CartSummary
	Summary(ctx context.Context) models.CartSummary
	Snapshot(ctx context.Context) models.Cart
	Add(ctx context.Context, product models.Product) (models.CartSummary, error)
	AddByID(ctx context.Context, productID string) (models.CartSummary, error)
	UpdateQuantity(ctx context.Context, productID string, delta int) (models.CartSummary, error)
	Remove(ctx context.Context, productID string) (models.CartSummary, error)
	Clear(ctx context.Context) error
	Settle(ctx context.Context, placed models.Cart) error
}

type cartService struct {
	repo    repository.CartRepository
	catalog CatalogService

	mu sync.Mutex
}

func NewCartService(repo repository.CartRepository, catalog CatalogService) CartService {
	return &cartService{repo: repo, catalog: catalog}
}

// Load re-reads the cart from storage. Unreadable data yields an empty cart.
func (s *cartService) Load(ctx context.Context) models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current(ctx).Summary()
}

// current reads the stored cart. Callers hold s.mu.
func (s *cartService) current(ctx context.Context) models.Cart {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Stored cart is unreadable, starting empty", slog.Any("error", err))
		return models.NewCart(nil)
	}

	return cart
}

func (s *cartService) Summary(ctx context.Context) models.CartSummary {
	return s.Load(ctx)
}

func (s *cartService) Snapshot(ctx context.Context) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current(ctx)
}

// commit persists next. Callers hold s.mu.
func (s *cartService) commit(ctx context.Context, next models.Cart) error {
	if err := s.repo.Save(ctx, next); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to persist cart", slog.Any("error", err))
		return errors.StorageError("No se pudo guardar el carrito").WithError(err)
	}

	return nil
}

func (s *cartService) Add(ctx context.Context, product models.Product) (models.CartSummary, error) {

	if strings.TrimSpace(product.ID) == "" {
		return models.CartSummary{}, errors.ValidationError("Product ID is required")
	}

	if !product.Available {
		return models.CartSummary{}, errors.ValidationError("Producto no disponible").WithDetail(product.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current(ctx).WithAdded(product)
	if err := s.commit(ctx, next); err != nil {
		return models.CartSummary{}, err
	}

	middleware.LoggerFromContext(ctx).Info("Product added to cart", slog.String("productId", product.ID))

	return next.Summary(), nil
}

// AddByID resolves the product from the catalog before adding it, so the line
// copies the current name, price, unit and image.
func (s *cartService) AddByID(ctx context.Context, productID string) (models.CartSummary, error) {

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return models.CartSummary{}, err
	}

	return s.Add(ctx, *product)
}

func (s *cartService) UpdateQuantity(ctx context.Context, productID string, delta int) (models.CartSummary, error) {

	if delta == 0 {
		return models.CartSummary{}, errors.ValidationError("Delta must not be zero")
	}

	if delta < -models.MaxQuantityDelta || delta > models.MaxQuantityDelta {
		return models.CartSummary{}, errors.ValidationError(fmt.Sprintf("Delta must be between -%d and %d", models.MaxQuantityDelta, models.MaxQuantityDelta))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := s.current(ctx).WithDelta(productID, delta)
	if !found {
		return models.CartSummary{}, errors.NotFoundError("Producto no encontrado en el carrito")
	}

	if err := s.commit(ctx, next); err != nil {
		return models.CartSummary{}, err
	}

	return next.Summary(), nil
}

// Remove is idempotent: removing a product that is not in the cart is a no-op.
func (s *cartService) Remove(ctx context.Context, productID string) (models.CartSummary, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.current(ctx)

	next, found := cart.Without(productID)
	if !found {
		return cart.Summary(), nil
	}

	if err := s.commit(ctx, next); err != nil {
		return models.CartSummary{}, err
	}

	middleware.LoggerFromContext(ctx).Info("Product removed from cart", slog.String("productId", productID))

	return next.Summary(), nil
}

func (s *cartService) Clear(ctx context.Context) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clear(ctx)
}

func (s *cartService) clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to clear cart", slog.Any("error", err))
		return errors.StorageError("No se pudo vaciar el carrito").WithError(err)
	}
	return nil
}

// Settle takes an ordered cart off the stored one. Lines added while the
// order was in flight stay in the cart.
func (s *cartService) Settle(ctx context.Context, placed models.Cart) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current(ctx).Minus(placed)
	if next.IsEmpty() {
		return s.clear(ctx)
	}

	middleware.LoggerFromContext(ctx).Info("Cart changed during checkout, keeping new lines", slog.Int("lines", len(next.Items)))

	return s.commit(ctx, next)
}
