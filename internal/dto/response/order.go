package response

import (
	"time"

	"bakerist/internal/data/entity"
)

type OrderCreatedResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderResponse struct {
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	UserName       string                `json:"user_name,omitempty"`
	ContactNo      string                `json:"contact_no,omitempty"`
	Barangay       string                `json:"barangay,omitempty"`
	Sitio          string                `json:"sitio,omitempty"`
	Items          []entity.OrderItem    `json:"items"`
	Total          float64               `json:"total"`
	DeliveryInfo   entity.DeliveryInfo   `json:"delivery_info"`
	PaymentMethod  string                `json:"payment_method"`
	TrackingStatus entity.TrackingStatus `json:"tracking_status"`
	StatusDisplay  string                `json:"status_display"`
	CreatedAt      time.Time             `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:             order.ID.String(),
		UserID:         order.UserID.String(),
		UserName:       order.UserName,
		ContactNo:      order.UserContact,
		Barangay:       order.UserBarangay,
		Sitio:          order.UserSitio,
		Items:          order.Items,
		Total:          order.Total,
		DeliveryInfo:   order.DeliveryInfo,
		PaymentMethod:  order.PaymentMethod,
		TrackingStatus: order.TrackingStatus,
		StatusDisplay:  order.TrackingStatus.Display(),
		CreatedAt:      order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderToResponse(o))
	}
	return out
}
