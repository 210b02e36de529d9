package wire

import (
	"net/http"

	"bakerist/internal/adaptor"
	"bakerist/internal/data/repository"
	"bakerist/internal/usecase"
	"bakerist/pkg/middleware"
	"bakerist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	limiter := middleware.NewRateLimiter(rate.Limit(config.RateLimit.RPS), config.RateLimit.Burst)
	r.Use(limiter.Middleware())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireProduct(r, handler.Product, config, logger)
	wireOrder(r, handler.Order, config, logger)
	wireReport(r, handler.Report, config, logger)
	wireUser(r, handler.User, config, logger)
	wireDeliveryZone(r, handler.Zone)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
