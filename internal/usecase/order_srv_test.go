package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"bakerist/internal/data/entity"
	"bakerist/internal/dto/request"
	"bakerist/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) FindAllWithUser(ctx context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TrackingStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return nil
	}
	o.TrackingStatus = status
	return nil
}

func orderConfig(strict bool) *utils.Config {
	return &utils.Config{
		Order: utils.OrderConfig{StrictTransitions: strict},
	}
}

func createOrderReq() *request.CreateOrderRequest {
	return &request.CreateOrderRequest{
		UserID: uuid.NewString(),
		Items: []request.OrderItemRequest{
			{ProductID: uuid.NewString(), Name: "Pandesal", Price: 5, Quantity: 12},
		},
		Total: 60,
		DeliveryInfo: &request.DeliveryInfoRequest{
			Name:      "Ana Cruz",
			ContactNo: "09171234567",
			Barangay:  "Poblacion",
			Sitio:     "Centro",
		},
		PaymentMethod: "cod",
	}
}

func TestOrderCreateStartsAtToPay(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, orderConfig(false), zap.NewNop())

	created, err := svc.Create(context.Background(), createOrderReq())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	id, err := uuid.Parse(created.ID)
	if err != nil {
		t.Fatalf("created ID is not a uuid: %v", err)
	}
	stored := repo.orders[id]
	if stored == nil {
		t.Fatal("order not persisted")
	}
	if stored.TrackingStatus != entity.StatusToPay {
		t.Errorf("TrackingStatus = %s, want %s", stored.TrackingStatus, entity.StatusToPay)
	}
	if stored.Total != 60 {
		t.Errorf("Total = %f, want 60", stored.Total)
	}
}

func TestOrderCreateRejectsBadUserID(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), orderConfig(false), zap.NewNop())

	req := createOrderReq()
	req.UserID = "not-a-uuid"
	_, err := svc.Create(context.Background(), req)
	if err == nil {
		t.Error("expected error for malformed user id")
	}
}

func seedOrder(repo *fakeOrderRepo, status entity.TrackingStatus) *entity.Order {
	o := &entity.Order{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:         uuid.New(),
		Total:          100,
		TrackingStatus: status,
	}
	repo.orders[o.ID] = o
	return o
}

func TestUpdateStatusLaxAllowsAnyOverwrite(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, orderConfig(false), zap.NewNop())
	order := seedOrder(repo, entity.StatusDelivered)

	// lax mode lets the admin move a delivered order backwards
	resp, err := svc.UpdateStatus(context.Background(), &request.UpdateOrderStatusRequest{
		OrderID: order.ID.String(),
		Status:  "to_prepare",
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if resp.TrackingStatus != entity.StatusToPrepare {
		t.Errorf("TrackingStatus = %s, want to_prepare", resp.TrackingStatus)
	}
	if repo.orders[order.ID].TrackingStatus != entity.StatusToPrepare {
		t.Error("status not persisted")
	}
}

func TestUpdateStatusStrictRejectsBackwardMove(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, orderConfig(true), zap.NewNop())
	order := seedOrder(repo, entity.StatusDelivered)

	_, err := svc.UpdateStatus(context.Background(), &request.UpdateOrderStatusRequest{
		OrderID: order.ID.String(),
		Status:  "to_prepare",
	})
	if err == nil || !strings.Contains(err.Error(), "cannot move order") {
		t.Errorf("err = %v, want transition rejection", err)
	}
	if repo.orders[order.ID].TrackingStatus != entity.StatusDelivered {
		t.Error("rejected transition still persisted")
	}
}

func TestUpdateStatusStrictAllowsForwardMove(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, orderConfig(true), zap.NewNop())
	order := seedOrder(repo, entity.StatusToPay)

	resp, err := svc.UpdateStatus(context.Background(), &request.UpdateOrderStatusRequest{
		OrderID: order.ID.String(),
		Status:  "out_for_delivery",
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if resp.TrackingStatus != entity.StatusOutForDelivery {
		t.Errorf("TrackingStatus = %s", resp.TrackingStatus)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), orderConfig(false), zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), &request.UpdateOrderStatusRequest{
		OrderID: uuid.NewString(),
		Status:  "delivered",
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, orderConfig(false), zap.NewNop())
	order := seedOrder(repo, entity.StatusToPay)

	_, err := svc.UpdateStatus(context.Background(), &request.UpdateOrderStatusRequest{
		OrderID: order.ID.String(),
		Status:  "shipped",
	})
	if err == nil {
		t.Error("expected rejection of unknown status")
	}
}
