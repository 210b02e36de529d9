package request

import (
	"testing"

	"bakerist/pkg/utils"
)

func validOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		UserID: "2f0b9d2c-6f3e-4b57-9a2e-07e1a9f2b111",
		Items: []OrderItemRequest{
			{
				ProductID: "5b1e8c74-91d2-4a3f-8f6f-1f2f3e4d5c6b",
				Name:      "Pandesal",
				Price:     5,
				Quantity:  12,
			},
		},
		Total: 60,
		DeliveryInfo: &DeliveryInfoRequest{
			Name:      "Ana Cruz",
			ContactNo: "09171234567",
			Barangay:  "Poblacion",
			Sitio:     "Centro",
		},
		PaymentMethod: "cod",
	}
}

func TestCreateOrderRequestValid(t *testing.T) {
	if errs := utils.ValidateStruct(validOrderRequest()); len(errs) > 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestCreateOrderRequestRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateOrderRequest)
	}{
		{"missing user id", func(r *CreateOrderRequest) { r.UserID = "" }},
		{"user id not a uuid", func(r *CreateOrderRequest) { r.UserID = "42" }},
		{"empty items", func(r *CreateOrderRequest) { r.Items = nil }},
		{"zero total", func(r *CreateOrderRequest) { r.Total = 0 }},
		{"negative total", func(r *CreateOrderRequest) { r.Total = -10 }},
		{"missing delivery info", func(r *CreateOrderRequest) { r.DeliveryInfo = nil }},
		{"missing payment method", func(r *CreateOrderRequest) { r.PaymentMethod = "" }},
		{"item quantity zero", func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 }},
		{"item missing name", func(r *CreateOrderRequest) { r.Items[0].Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(&req)
			if errs := utils.ValidateStruct(req); len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
		})
	}
}

func TestUpdateOrderStatusRequestStatusEnum(t *testing.T) {
	for _, status := range []string{"to_pay", "to_prepare", "out_for_delivery", "delivered"} {
		req := UpdateOrderStatusRequest{
			OrderID: "2f0b9d2c-6f3e-4b57-9a2e-07e1a9f2b111",
			Status:  status,
		}
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			t.Errorf("status %q rejected: %v", status, errs)
		}
	}

	for _, status := range []string{"", "shipped", "TO_PAY", "done"} {
		req := UpdateOrderStatusRequest{
			OrderID: "2f0b9d2c-6f3e-4b57-9a2e-07e1a9f2b111",
			Status:  status,
		}
		if errs := utils.ValidateStruct(req); len(errs) == 0 {
			t.Errorf("status %q accepted, want rejection", status)
		}
	}
}
