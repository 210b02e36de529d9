package adaptor

import (
	"encoding/json"
	"net/http"

	"bakerist/internal/dto/request"
	"bakerist/internal/usecase"
	"bakerist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /api/orders (checkout)
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", created)
}

// TrackOrder handles GET /api/tracking?order_id= (public tracking page)
func (h *OrderHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "track order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// GetAdminOrders handles GET /api/admin/orders
func (h *OrderHandler) GetAdminOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// GetOrderByID handles GET /api/admin/orders/{id} (order details view)
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// UpdateOrderStatus handles POST /api/admin/orders/status
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateOrderStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated successfully", order)
}
