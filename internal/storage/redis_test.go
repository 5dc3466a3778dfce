package storage_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestData struct {
	Field1 string `json:"field1"`
	Field2 int    `json:"field2"`
}

func setupRedisStore(t *testing.T) (storage.Store, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	return storage.NewRedisStore(client, "aqualan"), mock
}

func TestRedisStoreGet(t *testing.T) {
	ctx := t.Context()
	testValue := TestData{Field1: "value1", Field2: 123}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		store, mock := setupRedisStore(t)

		var result TestData

		mock.ExpectGet("aqualan:cart").SetVal(string(jsonData))

		// Act
		found, err := store.Get(ctx, storage.CartKey, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, testValue, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Not Found", func(t *testing.T) {
		// Arrange
		store, mock := setupRedisStore(t)

		var result TestData

		mock.ExpectGet("aqualan:cart").SetErr(redis.Nil)

		// Act
		found, err := store.Get(ctx, storage.CartKey, &result)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupRedisStore(t)

		var result TestData

		expectedErr := errors.New("redis connection error")
		mock.ExpectGet("aqualan:local_orders").SetErr(expectedErr)

		// Act
		found, err := store.Get(ctx, storage.LocalOrdersKey, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "failed to get key aqualan:local_orders from redis")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		// Arrange
		store, mock := setupRedisStore(t)

		var result TestData

		mock.ExpectGet("aqualan:cart").SetVal(`{"field1": "value1", "field2": "not_an_int"}`)

		// Act
		found, err := store.Get(ctx, storage.CartKey, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)

		var jsonErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Empty Key", func(t *testing.T) {
		store, _ := setupRedisStore(t)

		var result TestData

		_, err := store.Get(ctx, "", &result)

		assert.ErrorIs(t, err, storage.ErrInvalidKey)
	})
}

func TestRedisStoreSet(t *testing.T) {
	ctx := t.Context()
	testValue := TestData{Field1: "valueSet", Field2: 456}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - No Expiry", func(t *testing.T) {
		// Arrange
		store, mock := setupRedisStore(t)

		mock.ExpectSet("aqualan:cart", jsonData, 0).SetVal("OK")

		// Act
		err := store.Set(ctx, storage.CartKey, testValue)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		// Arrange
		store, mock := setupRedisStore(t)

		// Act
		err := store.Set(ctx, storage.CartKey, make(chan int))

		// Assert
		require.Error(t, err)

		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setupRedisStore(t)
		expectedErr := errors.New("redis SET failed")

		mock.ExpectSet("aqualan:cart", jsonData, 0).SetErr(expectedErr)

		// Act
		err := store.Set(ctx, storage.CartKey, testValue)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "failed to set key aqualan:cart in redis")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreDelete(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		store, mock := setupRedisStore(t)

		mock.ExpectDel("aqualan:cart").SetVal(1)

		require.NoError(t, store.Delete(ctx, storage.CartKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		store, mock := setupRedisStore(t)
		expectedErr := errors.New("redis DEL failed")

		mock.ExpectDel("aqualan:cart").SetErr(expectedErr)

		err := store.Delete(ctx, storage.CartKey)

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAgainstMiniredis(t *testing.T) {
	ctx := t.Context()

	mr := miniredis.RunT(t)

	client, err := storage.NewRedisClient(&config.RedisConnect{
		Host:      mr.Host(),
		Port:      mr.Port(),
		Namespace: "aqualan",
	})
	require.NoError(t, err)

	store := storage.NewRedisStore(client, "aqualan")
	t.Cleanup(func() { store.Close() })

	cart := models.Cart{}.WithAdded(models.Product{ID: "p-19", Name: "Botellón 19L", Price: 6.5, Unit: "unidad"})

	// Act
	require.NoError(t, store.Set(ctx, storage.CartKey, cart.Items))

	// Assert
	raw, err := mr.Get("aqualan:cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"product_id":"p-19","product_name":"Botellón 19L","quantity":1,"unit":"unidad","price":6.5}]`, raw)
	assert.Zero(t, mr.TTL("aqualan:cart"))

	var items []models.LineItem
	found, err := store.Get(ctx, storage.CartKey, &items)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cart.Items, items)

	require.NoError(t, store.Delete(ctx, storage.CartKey))
	assert.False(t, mr.Exists("aqualan:cart"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "aqualan:cart", storage.Key("aqualan", "cart"))
	assert.Equal(t, "cart", storage.Key("", "cart"))
	assert.Equal(t, "cart", storage.CartKey)
	assert.Equal(t, "local_orders", storage.LocalOrdersKey)
}
