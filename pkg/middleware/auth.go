package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bakerist/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token and puts its claims on the request
// context. Verification is stateless: every request pays the full
// signature check, nothing is cached between requests.
func Auth(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				utils.ResponseUnauthorized(w, "No token provided")
				return
			}

			claims, err := utils.VerifyToken(jwtSecret, token)
			if err != nil {
				if errors.Is(err, utils.ErrTokenExpired) {
					logger.Warn("Expired token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Token expired")
					return
				}
				logger.Warn("Invalid token", zap.String("path", r.URL.Path), zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetClaimsContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires claims with the admin role. Must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "No token provided")
				return
			}

			if claims.Role != "admin" {
				logger.Warn("Non-admin access attempt",
					zap.String("user_id", claims.UserID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
