package wire

import (
	"bakerist/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDeliveryZone(r chi.Router, zoneHandler *adaptor.DeliveryZoneHandler) {
	// GET /api/delivery-zones - Barangays with shipping fees (public, checkout uses it)
	r.Get("/api/delivery-zones", zoneHandler.GetZones)
}
