package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

const corsMaxAgeSeconds = 600

// NewCORS allows every origin for the browser client. Preflight requests are
// answered with 204 before routing, and any other OPTIONS request gets a bare
// 204 as well.
func NewCORS() Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:       []string{"Authorization", "Content-Type", "Range", RequestIDHeader},
		ExposedHeaders:       []string{"Content-Length", "Content-Range", "Accept-Ranges", RequestIDHeader},
		MaxAge:               corsMaxAgeSeconds,
		OptionsSuccessStatus: http.StatusNoContent,
	})

	return func(next http.Handler) http.Handler {
		return c.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
