// ABOUTME: Panic recovery middleware for API endpoints
// ABOUTME: Converts handler panics into JSON 500 responses

package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"skillscope-api/core/interfaces"
)

// RecoverMiddleware creates a middleware that recovers from handler
// panics and responds with a JSON error body instead of a dropped
// connection.
func RecoverMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if logger != nil {
						logger.Error("Handler panic recovered", map[string]interface{}{
							"method": r.Method,
							"path":   r.URL.Path,
							"panic":  fmt.Sprintf("%v", rec),
						})
					}

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": fmt.Sprintf("%v", rec),
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
