package utils

import (
	"context"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaimsContext stores verified token claims for downstream handlers.
func SetClaimsContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func GetClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
