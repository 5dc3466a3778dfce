package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
	"github.com/stretchr/testify/require"
)

// CreateTestRequest builds a request carrying a discard logger and the given
// path values, as the router and logging middleware would.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithLogger(req.Context(), logger)

	return req.WithContext(ctx)
}

// JSONBody marshals v for use as a request body.
func JSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

// DecodeAPIResponse unmarshals the envelope and, when data is non-nil, its
// data field into data.
func DecodeAPIResponse(t *testing.T, rr *httptest.ResponseRecorder, data any) response.APIResponse {
	t.Helper()

	var envelope struct {
		response.APIResponse
		Data json.RawMessage `json:"data,omitempty"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))

	if data != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}

	return envelope.APIResponse
}
