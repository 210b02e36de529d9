package adaptor

import (
	"net/http"

	"bakerist/internal/usecase"
	"bakerist/pkg/utils"

	"go.uber.org/zap"
)

type DeliveryZoneHandler struct {
	service usecase.DeliveryZoneService
	log     *zap.Logger
}

func NewDeliveryZoneHandler(service usecase.DeliveryZoneService, log *zap.Logger) *DeliveryZoneHandler {
	return &DeliveryZoneHandler{
		service: service,
		log:     log.With(zap.String("handler", "delivery_zone")),
	}
}

// GetZones handles GET /api/delivery-zones
func (h *DeliveryZoneHandler) GetZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.service.ListZones(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list delivery zones")
		return
	}

	utils.ResponseSuccess(w, "success", zones)
}
