package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS разрешает кросс-доменные запросы с указанных источников.
// "*" в списке разрешает любой источник.
func CORS(origins []string) func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, "Retry-After"},
		MaxAge:         300,
	})
}
