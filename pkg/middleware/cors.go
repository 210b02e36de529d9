package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the static storefront to call the API from any origin.
// Preflight requests get a plain 200.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		OptionsSuccessStatus: http.StatusOK,
		MaxAge:               86400,
	})
	return c.Handler
}
