package middleware

import (
	"net/http"
	"strings"
)

func CORS(allowOrigins []string) func(http.Handler) http.Handler {
	allowAll := len(allowOrigins) == 1 && allowOrigins[0] == "*"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			writeCORSHeaders(w, origin, allowOrigins, allowAll)

			// Preflight
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeCORSHeaders(w http.ResponseWriter, origin string, allowOrigins []string, allowAll bool) {
	if origin == "" {
		return
	}

	if !allowAll && !originAllowed(origin, allowOrigins) {
		return
	}

	// reflect the origin instead of "*" so credentialed browser requests work
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Add("Vary", "Origin")
	w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+HeaderRequestID)
	w.Header().Set("Access-Control-Expose-Headers", HeaderRequestID)
}

func originAllowed(origin string, allow []string) bool {
	for _, a := range allow {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(origin)) {
			return true
		}
	}
	return false
}
