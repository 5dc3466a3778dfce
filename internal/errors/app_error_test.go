package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	t.Run("Client Error Keeps Status", func(t *testing.T) {
		err := appErrors.UpstreamError(http.StatusNotFound, "Producto no encontrado")

		assert.Equal(t, http.StatusNotFound, err.StatusCode)
		assert.Equal(t, appErrors.ErrCodeUpstream, err.Code)
	})

	t.Run("Server Error Becomes Bad Gateway", func(t *testing.T) {
		err := appErrors.UpstreamError(http.StatusInternalServerError, "boom")

		assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	})
}

func TestIsAppError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	wrapped := fmt.Errorf("submitting order: %w", appErrors.NetworkError("Connection error").WithError(cause))

	appErr, ok := appErrors.IsAppError(wrapped)

	assert.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNetwork, appErr.Code)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, appErrors.HasCode(wrapped, appErrors.ErrCodeNetwork))
	assert.False(t, appErrors.HasCode(cause, appErrors.ErrCodeNetwork))
}
