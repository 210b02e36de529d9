package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bakerist/internal/data/entity"
	"bakerist/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAllWithUser(ctx context.Context) ([]*entity.Order, error)
	FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TrackingStatus) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// Create persists a new order. Items and delivery info always go in as
// JSON text; reads normalize whatever representation comes back.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	deliveryJSON, err := json.Marshal(order.DeliveryInfo)
	if err != nil {
		return fmt.Errorf("marshal delivery info: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, items, total, delivery_info, payment_method, tracking_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		string(itemsJSON),
		order.Total,
		string(deliveryJSON),
		order.PaymentMethod,
		order.TrackingStatus,
		order.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID.String(), err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.items, o.total, o.delivery_info, o.payment_method,
		       o.tracking_status, o.created_at,
		       u.name, u.contact_no, u.barangay, u.sitio
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.id = $1
	`

	var order entity.Order
	var rawItems, rawDelivery []byte

	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&rawItems,
		&order.Total,
		&rawDelivery,
		&order.PaymentMethod,
		&order.TrackingStatus,
		&order.CreatedAt,
		&order.UserName,
		&order.UserContact,
		&order.UserBarangay,
		&order.UserSitio,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	if err := decodeOrderPayload(&order, rawItems, rawDelivery); err != nil {
		r.log.Error("Failed to decode order payload",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("decode order %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) FindAllWithUser(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.items, o.total, o.delivery_info, o.payment_method,
		       o.tracking_status, o.created_at, u.name
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		var rawItems, rawDelivery []byte

		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&rawItems,
			&order.Total,
			&rawDelivery,
			&order.PaymentMethod,
			&order.TrackingStatus,
			&order.CreatedAt,
			&order.UserName,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if err := decodeOrderPayload(&order, rawItems, rawDelivery); err != nil {
			r.log.Error("Failed to decode order payload",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
			)
			return nil, fmt.Errorf("decode order %s: %w", order.ID.String(), err)
		}

		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

// FindCreatedBetween returns orders placed within [start, end] inclusive,
// oldest first. Feeds the sales report.
func (r *orderRepository) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, items, total, delivery_info, payment_method, tracking_status, created_at
		FROM orders
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		r.log.Error("Failed to find orders in range",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find orders between %s and %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		var rawItems, rawDelivery []byte

		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&rawItems,
			&order.Total,
			&rawDelivery,
			&order.PaymentMethod,
			&order.TrackingStatus,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if err := decodeOrderPayload(&order, rawItems, rawDelivery); err != nil {
			r.log.Error("Failed to decode order payload",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
			)
			return nil, fmt.Errorf("decode order %s: %w", order.ID.String(), err)
		}

		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus overwrites tracking_status. Any transition checking happens
// in the service layer; the row update itself is unconditional.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TrackingStatus) error {
	query := `UPDATE orders SET tracking_status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update status for order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	return nil
}

func decodeOrderPayload(order *entity.Order, rawItems, rawDelivery []byte) error {
	items, err := entity.DecodeItems(rawItems)
	if err != nil {
		return fmt.Errorf("decode items: %w", err)
	}
	order.Items = items

	info, err := entity.DecodeDeliveryInfo(rawDelivery)
	if err != nil {
		return fmt.Errorf("decode delivery info: %w", err)
	}
	order.DeliveryInfo = info

	return nil
}
