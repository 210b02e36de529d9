package wire

import (
	"bakerist/internal/adaptor"
	"bakerist/pkg/middleware"
	"bakerist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Customer registration
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Customer login
	r.Post("/api/login", authHandler.Login)

	// POST /api/admin/login - Admin login (admin accounts only)
	r.Post("/api/admin/login", authHandler.AdminLogin)

	// ==================== PROTECTED ROUTES ====================
	// GET /api/verify - Echo the claims of a valid token
	r.With(middleware.Auth(config.JWT.Secret, log)).
		Get("/api/verify", authHandler.Verify)

	// GET /api/admin/verify - Same, but the token must carry the admin role
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Admin(log),
	).Get("/api/admin/verify", authHandler.Verify)
}
