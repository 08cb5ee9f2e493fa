package middleware

import (
	"fmt"
	"net/http"

	"github.com/dtroode/trackbox-server/internal/api/http/render"
	"github.com/dtroode/trackbox-server/internal/logger"
)

// NewRecover turns handler panics into a generic 500 response.
func NewRecover(logger *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				render.Error(w, logger, fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, v))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
