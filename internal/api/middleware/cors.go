package middleware

import (
	"fmt"
	"net/http"
	"time"
)

// AllowedOrigin for dashboard clients. The proxy serves public weather
// data, so the origin policy is permissive.
const AllowedOrigin = "*"

// EdgeHeaders returns a middleware that stamps every response, errors
// included, with the permissive CORS headers and the client-facing
// Cache-Control that mirrors the edge cache TTL. OPTIONS preflights are
// answered directly with 204 and no body.
func EdgeHeaders(ttl time.Duration) func(http.Handler) http.Handler {
	cacheControl := fmt.Sprintf("public, max-age=%d", int(ttl.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", AllowedOrigin)
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Cache-Control", cacheControl)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
