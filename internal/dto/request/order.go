package request

type OrderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

type DeliveryInfoRequest struct {
	Name      string `json:"name" validate:"required"`
	ContactNo string `json:"contact_no" validate:"required"`
	Barangay  string `json:"barangay" validate:"required"`
	Sitio     string `json:"sitio" validate:"required"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

// CreateOrderRequest is the checkout payload. Every field is mandatory;
// the order total is client-supplied and stored as-is.
type CreateOrderRequest struct {
	UserID        string               `json:"user_id" validate:"required,uuid"`
	Items         []OrderItemRequest   `json:"items" validate:"required,min=1,dive"`
	Total         float64              `json:"total" validate:"required,gt=0"`
	DeliveryInfo  *DeliveryInfoRequest `json:"delivery_info" validate:"required"`
	PaymentMethod string               `json:"payment_method" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
	Status  string `json:"status" validate:"required,oneof=to_pay to_prepare out_for_delivery delivered"`
}
