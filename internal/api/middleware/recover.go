package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils/response"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFromContext(r.Context()).Error("Panic while serving request",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
				response.Error(w, errors.InternalError("Internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
