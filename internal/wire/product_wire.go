package wire

import (
	"bakerist/internal/adaptor"
	"bakerist/pkg/middleware"
	"bakerist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/products - Storefront catalog (available products only)
	r.Get("/api/products", productHandler.GetProducts)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/products", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Get("/", productHandler.GetAdminProducts)     // GET /api/admin/products
		r.Post("/update", productHandler.UpdateProduct) // POST /api/admin/products/update
		r.Post("/toggle", productHandler.ToggleProduct) // POST /api/admin/products/toggle
	})
}
