package wire

import (
	"bakerist/internal/adaptor"
	"bakerist/pkg/middleware"
	"bakerist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/orders - Checkout (user id travels in the body)
	r.Post("/api/orders", orderHandler.CreateOrder)

	// GET /api/tracking?order_id= - Public order tracking
	r.Get("/api/tracking", orderHandler.TrackOrder)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Get("/", orderHandler.GetAdminOrders)           // GET /api/admin/orders
		r.Post("/status", orderHandler.UpdateOrderStatus) // POST /api/admin/orders/status
		r.Get("/{id}", orderHandler.GetOrderByID)         // GET /api/admin/orders/{id}
	})
}
