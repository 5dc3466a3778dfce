package service_test

import (
	"errors"
	"math"
	"testing"

	appErrors "github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	repository "github.com/josumamgar-gif/App-Aqualan/internal/repositories"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/services/mocks"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
	storageMocks "github.com/josumamgar-gif/App-Aqualan/internal/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	botellon = models.Product{ID: "p-19l", Name: "Botellón 19L", Price: 6.5, Unit: "unidad", Available: true}
	ecobox   = models.Product{ID: "p-eco", Name: "Ecobox 15L", Price: 3.25, Unit: "caja", Available: true}
)

func setupCartTest() (storage.Store, *mocks.CatalogService, service.CartService) {
	store := storage.NewMemoryStore()
	catalog := new(mocks.CatalogService)
	cartService := service.NewCartService(repository.NewCartRepo(store), catalog)
	return store, catalog, cartService
}

func TestCartAdd(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Same Product Twice Increments Quantity", func(t *testing.T) {
		// Arrange
		_, _, cartService := setupCartTest()

		// Act
		_, err := cartService.Add(ctx, botellon)
		require.NoError(t, err)
		summary, err := cartService.Add(ctx, botellon)

		// Assert
		require.NoError(t, err)
		require.Len(t, summary.Items, 1)
		assert.Equal(t, 2, summary.Items[0].Quantity)
		assert.Equal(t, 1, summary.Lines)
		assert.Equal(t, 2, summary.Units)
	})

	t.Run("Success - Total Over Several Lines", func(t *testing.T) {
		// Arrange
		_, _, cartService := setupCartTest()

		// Act
		_, _ = cartService.Add(ctx, botellon)
		_, _ = cartService.Add(ctx, botellon)
		summary, err := cartService.Add(ctx, ecobox)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 16.25, summary.Total, 0.0001)
		assert.True(t, summary.Priced)
	})

	t.Run("Success - Mutation Is Persisted", func(t *testing.T) {
		// Arrange
		store, _, cartService := setupCartTest()

		// Act
		_, err := cartService.Add(ctx, ecobox)
		require.NoError(t, err)

		// Assert
		var items []models.LineItem
		found, err := store.Get(ctx, storage.CartKey, &items)
		require.NoError(t, err)
		assert.True(t, found)
		require.Len(t, items, 1)
		assert.Equal(t, "p-eco", items[0].ProductID)
	})

	t.Run("Failure - Unavailable Product", func(t *testing.T) {
		// Arrange
		_, _, cartService := setupCartTest()
		soldOut := botellon
		soldOut.Available = false

		// Act
		_, err := cartService.Add(ctx, soldOut)

		// Assert
		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		assert.Equal(t, 0, cartService.Summary(ctx).Lines)
	})

	t.Run("Failure - Storage Error Leaves Cart Unchanged", func(t *testing.T) {
		// Arrange
		store := new(storageMocks.Store)
		cartService := service.NewCartService(repository.NewCartRepo(store), new(mocks.CatalogService))
		storeErr := errors.New("disk full")

		store.On("Get", mock.Anything, storage.CartKey, mock.Anything).Return(false, nil)
		store.On("Set", mock.Anything, storage.CartKey, mock.Anything).Return(storeErr).Once()

		// Act
		_, err := cartService.Add(ctx, botellon)

		// Assert
		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeStorage))
		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, 0, cartService.Summary(ctx).Lines)
		store.AssertExpectations(t)
	})
}

func TestCartAddByID(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		_, catalog, cartService := setupCartTest()
		catalog.On("GetProduct", mock.Anything, "p-19l").Return(&botellon, nil).Once()

		// Act
		summary, err := cartService.AddByID(ctx, "p-19l")

		// Assert
		require.NoError(t, err)
		require.Len(t, summary.Items, 1)
		assert.Equal(t, "Botellón 19L", summary.Items[0].ProductName)
		catalog.AssertExpectations(t)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		_, catalog, cartService := setupCartTest()
		catalog.On("GetProduct", mock.Anything, "nope").Return(nil, appErrors.NotFoundError("Producto no encontrado")).Once()

		// Act
		_, err := cartService.AddByID(ctx, "nope")

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
		catalog.AssertExpectations(t)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Decrement To Zero Removes Line", func(t *testing.T) {
		// Arrange
		_, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, botellon)
		_, _ = cartService.Add(ctx, ecobox)

		// Act
		summary, err := cartService.UpdateQuantity(ctx, "p-19l", -1)

		// Assert
		require.NoError(t, err)
		require.Len(t, summary.Items, 1)
		assert.Equal(t, "p-eco", summary.Items[0].ProductID)
	})

	t.Run("Success - Increment", func(t *testing.T) {
		_, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, ecobox)

		summary, err := cartService.UpdateQuantity(ctx, "p-eco", 3)

		require.NoError(t, err)
		assert.Equal(t, 4, summary.Units)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		_, _, cartService := setupCartTest()

		_, err := cartService.UpdateQuantity(ctx, "ghost", 1)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})

	t.Run("Failure - Delta Out Of Range", func(t *testing.T) {
		// Arrange
		store, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, ecobox)

		// Act
		_, err := cartService.UpdateQuantity(ctx, "p-eco", math.MaxInt)

		// Assert
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))

		var items []models.LineItem
		_, err = store.Get(ctx, storage.CartKey, &items)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("Failure - Zero Delta", func(t *testing.T) {
		_, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, ecobox)

		_, err := cartService.UpdateQuantity(ctx, "p-eco", 0)

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
	})
}

func TestCartRemove(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		_, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, botellon)

		summary, err := cartService.Remove(ctx, "p-19l")

		require.NoError(t, err)
		assert.Empty(t, summary.Items)
	})

	t.Run("Success - Unknown Product Is A No-Op", func(t *testing.T) {
		_, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, botellon)

		summary, err := cartService.Remove(ctx, "ghost")

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Lines)
	})
}

func TestCartClearAndReload(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Clear Then Reload Is Empty", func(t *testing.T) {
		// Arrange
		store, catalog, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, botellon)

		// Act
		require.NoError(t, cartService.Clear(ctx))
		reloaded := service.NewCartService(repository.NewCartRepo(store), catalog).Load(ctx)

		// Assert
		assert.Empty(t, reloaded.Items)
		assert.Equal(t, 0, reloaded.Units)
	})

	t.Run("Success - Cart Survives Restart", func(t *testing.T) {
		store, catalog, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, botellon)
		_, _ = cartService.Add(ctx, botellon)

		reloaded := service.NewCartService(repository.NewCartRepo(store), catalog).Summary(ctx)

		require.Len(t, reloaded.Items, 1)
		assert.Equal(t, 2, reloaded.Items[0].Quantity)
	})

	t.Run("Success - Corrupt Data Loads Empty", func(t *testing.T) {
		// Arrange
		store, catalog, _ := setupCartTest()
		require.NoError(t, store.Set(ctx, storage.CartKey, "not a cart"))

		// Act
		summary := service.NewCartService(repository.NewCartRepo(store), catalog).Load(ctx)

		// Assert
		assert.Empty(t, summary.Items)
	})
}

func TestCartSharedStore(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Reads Reflect Writes From Another Owner", func(t *testing.T) {
		// Arrange
		store, catalog, first := setupCartTest()
		second := service.NewCartService(repository.NewCartRepo(store), catalog)
		assert.Empty(t, first.Summary(ctx).Items)

		// Act
		_, err := second.Add(ctx, botellon)
		require.NoError(t, err)

		// Assert
		summary := first.Summary(ctx)
		require.Len(t, summary.Items, 1)
		assert.Equal(t, "p-19l", summary.Items[0].ProductID)
		require.Len(t, first.Snapshot(ctx).Items, 1)
	})

	t.Run("Success - Mutations Keep Lines Added Elsewhere", func(t *testing.T) {
		// Arrange
		store, catalog, first := setupCartTest()
		second := service.NewCartService(repository.NewCartRepo(store), catalog)
		_ = first.Summary(ctx)
		_, err := second.Add(ctx, botellon)
		require.NoError(t, err)

		// Act
		summary, err := first.Add(ctx, ecobox)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Lines)

		var items []models.LineItem
		_, err = store.Get(ctx, storage.CartKey, &items)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "p-19l", items[0].ProductID)
		assert.Equal(t, "p-eco", items[1].ProductID)
	})

	t.Run("Success - Clear Elsewhere Shows Up On Next Read", func(t *testing.T) {
		// Arrange
		store, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, botellon)
		require.Equal(t, 1, cartService.Summary(ctx).Lines)

		// Act
		require.NoError(t, repository.NewCartRepo(store).Clear(ctx))

		// Assert
		assert.Empty(t, cartService.Summary(ctx).Items)
		assert.True(t, cartService.Snapshot(ctx).IsEmpty())
	})
}

func TestCartSettle(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Ordered Cart Is Emptied", func(t *testing.T) {
		// Arrange
		store, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, botellon)
		placed := cartService.Snapshot(ctx)

		// Act
		err := cartService.Settle(ctx, placed)

		// Assert
		require.NoError(t, err)
		found, err := store.Get(ctx, storage.CartKey, &[]models.LineItem{})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Success - Lines Added After The Snapshot Survive", func(t *testing.T) {
		// Arrange
		_, _, cartService := setupCartTest()
		_, _ = cartService.Add(ctx, botellon)
		placed := cartService.Snapshot(ctx)
		_, _ = cartService.Add(ctx, ecobox)

		// Act
		err := cartService.Settle(ctx, placed)

		// Assert
		require.NoError(t, err)
		summary := cartService.Summary(ctx)
		require.Len(t, summary.Items, 1)
		assert.Equal(t, "p-eco", summary.Items[0].ProductID)
	})
}

func TestCartSnapshotIsACopy(t *testing.T) {
	ctx := t.Context()
	_, _, cartService := setupCartTest()
	_, _ = cartService.Add(ctx, botellon)

	snapshot := cartService.Snapshot(ctx)
	snapshot.Items[0].Quantity = 99

	assert.Equal(t, 1, cartService.Summary(ctx).Items[0].Quantity)
}
