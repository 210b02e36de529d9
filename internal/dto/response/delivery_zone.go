package response

import (
	"bakerist/internal/data/entity"
)

type DeliveryZoneResponse struct {
	Barangay    string  `json:"barangay"`
	ShippingFee float64 `json:"shipping_fee"`
}

func DeliveryZonesToResponse(zones []*entity.DeliveryZone) []DeliveryZoneResponse {
	out := make([]DeliveryZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, DeliveryZoneResponse{
			Barangay:    z.Barangay,
			ShippingFee: z.ShippingFee,
		})
	}
	return out
}
