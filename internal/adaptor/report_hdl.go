package adaptor

import (
	"net/http"

	"bakerist/internal/usecase"
	"bakerist/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// SalesReport handles GET /api/admin/reports/sales?start_date=&end_date=
func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	if startDate == "" || endDate == "" {
		utils.ResponseBadRequest(w, "start_date and end_date are required", nil)
		return
	}

	report, err := h.service.SalesReport(r.Context(), startDate, endDate)
	if err != nil {
		handleServiceError(w, h.log, err, "sales report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
