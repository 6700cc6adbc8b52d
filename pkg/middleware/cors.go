package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows any origin, method and header with credentials. The request
// origin is reflected because "*" cannot be sent alongside credentials.
// This is a development posture and should be narrowed for production.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	})
	return c.Handler
}
