package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	appErrors "github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// placeholderHost is the sample URL shipped in example configs.
const placeholderHost = "tu-api-mongodb-o-servidor.com"

const maxErrorBody = 64 << 10

const (
	MsgBackendNotConfigured = "Backend no configurado. Configura la URL del servidor para continuar."
	MsgNetwork              = "No se puede conectar con el servidor. Comprueba tu conexión e inténtalo de nuevo."
	MsgUpstream             = "El servidor respondió con un error. Inténtalo más tarde."
	MsgNotFound             = "Recurso no encontrado"
	MsgInvalidResponse      = "Respuesta inválida del servidor"
)

// Client talks to the Aqualan REST backend. All methods return *errors.AppError
// values on failure and never retry.
type Client struct {
	baseURL *url.URL
	raw     string
	http    *http.Client
}

func NewClient(cfg config.Backend) (*Client, error) {
	raw := cfg.ResolveBaseURL()

	u, err := url.Parse(raw + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url %q: %w", raw, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: u,
		raw:     raw,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// HasBackend reports whether rawURL points at a real backend.
func HasBackend(rawURL string) bool {
	u := strings.TrimSpace(rawURL)
	return strings.HasPrefix(u, "http") && !strings.Contains(u, placeholderHost)
}

func (c *Client) HasBackend() bool {
	return HasBackend(c.raw)
}

func (c *Client) BaseURL() string {
	return c.raw
}

// do sends one request and decodes a 2xx JSON body into dest (when non-nil).
func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, body, dest any) error {
	logger := middleware.LoggerFromContext(ctx)

	if !c.HasBackend() {
		return appErrors.BackendNotConfiguredError(MsgBackendNotConfigured)
	}

	rel, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return appErrors.InternalError("Failed to build request").WithError(err)
	}
	if len(query) > 0 {
		rel.RawQuery = query.Encode()
	}
	u := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.InternalError("Failed to encode request").WithError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return appErrors.InternalError("Failed to build request").WithError(err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// propagate the correlation id downstream
	if rid := middleware.RequestIDFromContext(ctx); rid != "" {
		req.Header.Set(middleware.HeaderRequestID, rid)
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveBackendCall(endpoint, metrics.OutcomeNetworkError, time.Since(start))
		logger.Warn("Backend request failed", slog.String("endpoint", endpoint), slog.String("url", u.Redacted()), slog.Any("error", err))
		return appErrors.NetworkError(MsgNetwork).WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome := metrics.OutcomeServerError
		if resp.StatusCode < 500 {
			outcome = metrics.OutcomeClientError
		}
		metrics.ObserveBackendCall(endpoint, outcome, time.Since(start))

		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		detail := ParseDetail(raw)

		logger.Warn("Backend returned an error",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("detail", detail),
		)

		statusErr := fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)

		if resp.StatusCode == http.StatusNotFound {
			return appErrors.NotFoundError(MsgNotFound).WithDetail(detail).WithError(statusErr)
		}

		return appErrors.UpstreamError(resp.StatusCode, MsgUpstream).WithDetail(detail).WithError(statusErr)
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			metrics.ObserveBackendCall(endpoint, metrics.OutcomeDecodeError, time.Since(start))
			logger.Error("Failed to decode backend response", slog.String("endpoint", endpoint), slog.Any("error", err))
			return appErrors.UpstreamError(http.StatusBadGateway, MsgInvalidResponse).WithError(err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	metrics.ObserveBackendCall(endpoint, metrics.OutcomeSuccess, time.Since(start))
	logger.Debug("Backend request completed", slog.String("endpoint", endpoint), slog.Int("status", resp.StatusCode), slog.Duration("duration", time.Since(start)))

	return nil
}

// ParseDetail extracts FastAPI's "detail" from an error body: either a string
// or a list of {msg} objects joined with ". ".
func ParseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if m := strings.TrimSpace(it.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, ". ")
	}

	return ""
}
