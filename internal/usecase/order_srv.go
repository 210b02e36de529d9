package usecase

import (
	"context"
	"fmt"
	"time"

	"bakerist/internal/data/entity"
	"bakerist/internal/data/repository"
	"bakerist/internal/dto/request"
	"bakerist/internal/dto/response"
	"bakerist/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	Create(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderCreatedResponse, error)
	GetByID(ctx context.Context, orderID string) (*response.OrderResponse, error)
	ListAll(ctx context.Context) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo   repository.OrderRepository
	config *utils.Config
	log    *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, config *utils.Config, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// Create is the only entry into the order lifecycle. Every order starts
// at to_pay. The total is taken from the client as-is; stock is not
// decremented here.
func (s *orderService) Create(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		productID, err := uuid.Parse(it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product ID in items")
		}
		items = append(items, entity.OrderItem{
			ProductID: productID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
		Items:  items,
		Total:  req.Total,
		DeliveryInfo: entity.DeliveryInfo{
			Name:      req.DeliveryInfo.Name,
			ContactNo: req.DeliveryInfo.ContactNo,
			Barangay:  req.DeliveryInfo.Barangay,
			Sitio:     req.DeliveryInfo.Sitio,
			Address:   req.DeliveryInfo.Address,
			Notes:     req.DeliveryInfo.Notes,
		},
		PaymentMethod:  req.PaymentMethod,
		TrackingStatus: entity.StatusToPay,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to create order")
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", order.UserID.String()),
		zap.Float64("total", order.Total))

	return &response.OrderCreatedResponse{
		ID:        order.ID.String(),
		CreatedAt: order.CreatedAt,
	}, nil
}

func (s *orderService) GetByID(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to get order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) ListAll(ctx context.Context) ([]response.OrderResponse, error) {
	orders, err := s.repo.FindAllWithUser(ctx)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("failed to list orders")
	}

	return response.OrdersToResponse(orders), nil
}

// UpdateStatus overwrites the tracking status. By default any known
// status may replace any other (the admin panel depends on free
// overwrite); with strict transitions on, only forward steps pass.
func (s *orderService) UpdateStatus(ctx context.Context, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID")
	}

	newStatus := entity.TrackingStatus(req.Status)
	if !newStatus.Valid() {
		return nil, fmt.Errorf("validation failed: unknown tracking status %q", req.Status)
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load order for status update",
			zap.Error(err), zap.String("order_id", req.OrderID))
		return nil, fmt.Errorf("failed to update order status")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	if s.config.Order.StrictTransitions && !order.TrackingStatus.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("validation failed: cannot move order from %s to %s",
			order.TrackingStatus, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", req.OrderID),
			zap.String("status", req.Status))
		return nil, fmt.Errorf("failed to update order status")
	}

	s.log.Info("Order status updated",
		zap.String("order_id", req.OrderID),
		zap.String("from", string(order.TrackingStatus)),
		zap.String("to", req.Status))

	order.TrackingStatus = newStatus
	resp := response.OrderToResponse(order)
	return &resp, nil
}
