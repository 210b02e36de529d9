package wire

import (
	"bakerist/internal/adaptor"
	"bakerist/pkg/middleware"
	"bakerist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/admin/customers - Customer list for the back office
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Admin(log),
	).Get("/api/admin/customers", userHandler.GetCustomers)
}
