package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	repository "github.com/josumamgar-gif/App-Aqualan/internal/repositories"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHistoryRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Empty History", func(t *testing.T) {
		repo := repository.NewOrderHistoryRepo(storage.NewMemoryStore())

		orders, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})

	t.Run("Success - Prepend Keeps Newest First", func(t *testing.T) {
		// Arrange
		store := storage.NewMemoryStore()
		repo := repository.NewOrderHistoryRepo(store)

		first := models.Order{ID: "o-1", Status: models.OrderStatusPending, CreatedAt: models.NewTimestamp(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))}
		second := models.Order{ID: "o-2", Status: models.OrderStatusPending, CreatedAt: models.NewTimestamp(time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC))}

		// Act
		require.NoError(t, repo.Prepend(ctx, first))
		require.NoError(t, repo.Prepend(ctx, second))

		// Assert
		orders, err := repository.NewOrderHistoryRepo(store).List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "o-2", orders[0].ID)
		assert.Equal(t, "o-1", orders[1].ID)
		assert.True(t, orders[1].CreatedAt.Equal(first.CreatedAt.Time))
	})

	t.Run("Failure - Unreadable History Is Not Overwritten", func(t *testing.T) {
		// Arrange
		mockStore := new(mocks.Store)
		readErr := errors.New("corrupt json")
		mockStore.On("Get", mock.Anything, storage.LocalOrdersKey, mock.Anything).Return(false, readErr).Once()

		// Act
		err := repository.NewOrderHistoryRepo(mockStore).Prepend(ctx, models.Order{ID: "o-3"})

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, readErr)
		mockStore.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Failure - Write Error", func(t *testing.T) {
		// Arrange
		mockStore := new(mocks.Store)
		writeErr := errors.New("quota exceeded")
		mockStore.On("Get", mock.Anything, storage.LocalOrdersKey, mock.Anything).Return(false, nil).Once()
		mockStore.On("Set", mock.Anything, storage.LocalOrdersKey, mock.MatchedBy(func(orders []models.Order) bool {
			return len(orders) == 1 && orders[0].ID == "o-4"
		})).Return(writeErr).Once()

		// Act
		err := repository.NewOrderHistoryRepo(mockStore).Prepend(ctx, models.Order{ID: "o-4"})

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, writeErr)
		mockStore.AssertExpectations(t)
	})
}
