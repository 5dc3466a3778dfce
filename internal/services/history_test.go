package service_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	appErrors "github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	repository "github.com/josumamgar-gif/App-Aqualan/internal/repositories"
	service "github.com/josumamgar-gif/App-Aqualan/internal/services"
	"github.com/josumamgar-gif/App-Aqualan/internal/services/mocks"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderAt(id string, t time.Time) models.Order {
	return models.Order{ID: id, Status: models.OrderStatusPending, CreatedAt: models.NewTimestamp(t)}
}

func TestLocalHistory(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Groups By Month Newest First", func(t *testing.T) {
		// Arrange
		store := storage.NewMemoryStore()
		history := service.NewLocalHistoryService(repository.NewOrderHistoryRepo(store), time.UTC)

		require.NoError(t, history.Record(ctx, orderAt("jan-1", time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC))))
		require.NoError(t, history.Record(ctx, orderAt("feb-1", time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC))))
		require.NoError(t, history.Record(ctx, orderAt("jan-2", time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC))))

		// Act
		groups, err := history.Groups(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, groups, 2)

		assert.Equal(t, "FEBRERO 2025", groups[0].Label)
		assert.Equal(t, 1, groups[0].Count)

		assert.Equal(t, "ENERO 2025", groups[1].Label)
		assert.Equal(t, "2025-0", groups[1].Key)
		assert.Equal(t, 2, groups[1].Count)
		assert.Equal(t, "jan-2", groups[1].Orders[0].ID)
		assert.Equal(t, "jan-1", groups[1].Orders[1].ID)
	})

	t.Run("Success - Record Prepends", func(t *testing.T) {
		store := storage.NewMemoryStore()
		history := service.NewLocalHistoryService(repository.NewOrderHistoryRepo(store), time.UTC)

		_ = history.Record(ctx, orderAt("a", time.Now()))
		_ = history.Record(ctx, orderAt("b", time.Now()))

		orders, err := history.List(ctx)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "b", orders[0].ID)
	})

	t.Run("Success - Corrupt History Reads Empty", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, storage.LocalOrdersKey, map[string]int{"oops": 1}))
		history := service.NewLocalHistoryService(repository.NewOrderHistoryRepo(store), time.UTC)

		groups, err := history.Groups(ctx)

		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("Failure - Record Does Not Overwrite Unreadable History", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, storage.LocalOrdersKey, "garbage"))
		history := service.NewLocalHistoryService(repository.NewOrderHistoryRepo(store), time.UTC)

		err := history.Record(ctx, orderAt("a", time.Now()))

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeStorage))
		var raw string
		found, _ := store.Get(ctx, storage.LocalOrdersKey, &raw)
		assert.True(t, found)
		assert.Equal(t, "garbage", raw)
	})

	t.Run("Get", func(t *testing.T) {
		store := storage.NewMemoryStore()
		history := service.NewLocalHistoryService(repository.NewOrderHistoryRepo(store), time.UTC)
		_ = history.Record(ctx, orderAt("o-9", time.Now()))

		order, err := history.Get(ctx, "o-9")
		require.NoError(t, err)
		assert.Equal(t, "o-9", order.ID)

		_, err = history.Get(ctx, "missing")
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeNotFound))
	})

	t.Run("Failure - ByEmail Not Supported", func(t *testing.T) {
		history := service.NewLocalHistoryService(repository.NewOrderHistoryRepo(storage.NewMemoryStore()), nil)

		_, err := history.ByEmail(ctx, "ane@example.com")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
		assert.Equal(t, models.HistoryModeLocal, history.Mode())
	})
}

func TestRemoteHistory(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - ByEmail", func(t *testing.T) {
		// Arrange
		api := new(mocks.Backend)
		history := service.NewRemoteHistoryService(api, validator.New())
		api.On("ListOrders", mock.Anything, "ane@example.com").Return([]models.Order{{ID: "r-1"}}, nil).Once()

		// Act
		orders, err := history.ByEmail(ctx, " ane@example.com ")

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "r-1", orders[0].ID)
		api.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Email", func(t *testing.T) {
		api := new(mocks.Backend)
		history := service.NewRemoteHistoryService(api, validator.New())

		_, err := history.ByEmail(ctx, "not-an-email")

		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
		api.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Get Not Found", func(t *testing.T) {
		api := new(mocks.Backend)
		history := service.NewRemoteHistoryService(api, validator.New())
		api.On("GetOrder", mock.Anything, "x").Return(nil, appErrors.NotFoundError("Recurso no encontrado")).Once()

		_, err := history.Get(ctx, "x")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Pedido no encontrado", appErr.Message)
	})

	t.Run("Record Is A No-Op", func(t *testing.T) {
		api := new(mocks.Backend)
		history := service.NewRemoteHistoryService(api, validator.New())

		assert.NoError(t, history.Record(ctx, models.Order{ID: "x"}))
		_, err := history.Groups(ctx)
		assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeBadRequest))
		assert.Equal(t, models.HistoryModeRemote, history.Mode())
	})
}
