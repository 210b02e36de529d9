package usecase

import (
	"context"
	"fmt"

	"bakerist/internal/data/repository"
	"bakerist/internal/dto/response"

	"go.uber.org/zap"
)

type DeliveryZoneService interface {
	ListZones(ctx context.Context) ([]response.DeliveryZoneResponse, error)
}

type deliveryZoneService struct {
	repo repository.DeliveryZoneRepository
	log  *zap.Logger
}

func NewDeliveryZoneService(repo repository.DeliveryZoneRepository, log *zap.Logger) DeliveryZoneService {
	return &deliveryZoneService{
		repo: repo,
		log:  log,
	}
}

func (s *deliveryZoneService) ListZones(ctx context.Context) ([]response.DeliveryZoneResponse, error) {
	zones, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list delivery zones", zap.Error(err))
		return nil, fmt.Errorf("failed to list delivery zones")
	}

	return response.DeliveryZonesToResponse(zones), nil
}
