package middleware

import (
	"net/http"

	"bakerist/pkg/utils"

	"golang.org/x/time/rate"
)

type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(r, b),
	}
}

// Middleware rejects requests over the global budget with 429.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.limiter.Allow() {
				utils.ResponseJSON(w, http.StatusTooManyRequests, false,
					"Too many requests. Please try again later.", nil, nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
