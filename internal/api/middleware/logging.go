package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type logContextKey string

const (
	loggerKey    = logContextKey("logger")
	requestIDKey = logContextKey("request_id")

	HeaderRequestID = "X-Request-ID"
)

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()

		// Correlation ID
		correlationID := r.Header.Get(HeaderRequestID)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, correlationID)

		// Request-scoped logger, every log line would contain these fields
		requestLogger := slog.Default().With(
			slog.String("correlation_id", correlationID),
			slog.String("http_method", r.Method),
			slog.String("http_path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)

		requestLogger.Info("Incoming request")

		ctx := WithRequestID(r.Context(), correlationID)
		ctx = WithLogger(ctx, requestLogger)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r.WithContext(ctx))

		requestLogger.Info("Request Completed", slog.Int("http_status", rw.statusCode), slog.Duration("duration", time.Since(start)))

	})
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}

// WithRequestID lets callers outside HTTP (the CLI) tag backend calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
