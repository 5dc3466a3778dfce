package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
)

const MsgTooManyRequests = "Demasiados envíos seguidos. Espera un momento e inténtalo de nuevo."

type RateLimiter interface {
	CheckSubmitRateLimit(ctx context.Context, client string) (bool, int, int, error)
}

type RateLimitMiddleware struct {
	limiter RateLimiter
}

// NewRateLimitMiddleware returns nil when limiter is nil; a nil middleware
// passes every request through.
func NewRateLimitMiddleware(limiter RateLimiter) *RateLimitMiddleware {
	if limiter == nil {
		return nil
	}
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit counts requests per client IP under scope. Limiter failures let the
// request through.
func (m *RateLimitMiddleware) Limit(scope string, next http.HandlerFunc) http.HandlerFunc {

	if m == nil {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())
		client := scope + ":" + ClientIP(r)

		allowed, remaining, retryAfter, err := m.limiter.CheckSubmitRateLimit(r.Context(), client)
		if err != nil {
			logger.Warn("Rate limit check failed, allowing request", slog.String("client", client), slog.Any("error", err))
			next(w, r)
			return
		}

		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.Error(w, errors.TooManyRequestsError(MsgTooManyRequests))
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		next(w, r)
	}
}

// ClientIP prefers the first X-Forwarded-For hop, then RemoteAddr.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
