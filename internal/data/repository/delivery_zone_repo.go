package repository

import (
	"context"
	"fmt"

	"bakerist/internal/data/entity"
	"bakerist/pkg/database"

	"go.uber.org/zap"
)

type DeliveryZoneRepository interface {
	FindAll(ctx context.Context) ([]*entity.DeliveryZone, error)
}

type deliveryZoneRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDeliveryZoneRepository(db database.PgxIface, log *zap.Logger) DeliveryZoneRepository {
	return &deliveryZoneRepository{
		db:  db,
		log: log.With(zap.String("repository", "delivery_zone")),
	}
}

func (r *deliveryZoneRepository) FindAll(ctx context.Context) ([]*entity.DeliveryZone, error) {
	query := `SELECT barangay, shipping_fee FROM delivery_zones ORDER BY barangay`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find delivery zones", zap.Error(err))
		return nil, fmt.Errorf("find delivery zones: %w", err)
	}
	defer rows.Close()

	var zones []*entity.DeliveryZone
	for rows.Next() {
		var zone entity.DeliveryZone
		if err := rows.Scan(&zone.Barangay, &zone.ShippingFee); err != nil {
			r.log.Error("Failed to scan delivery zone row", zap.Error(err))
			return nil, fmt.Errorf("scan delivery zone row: %w", err)
		}
		zones = append(zones, &zone)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate delivery zones rows: %w", err)
	}

	return zones, nil
}
