package wire

import (
	"bakerist/internal/adaptor"
	"bakerist/pkg/middleware"
	"bakerist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/admin/reports/sales?start_date=&end_date=
	r.With(
		middleware.Auth(config.JWT.Secret, log),
		middleware.Admin(log),
	).Get("/api/admin/reports/sales", reportHandler.SalesReport)
}
