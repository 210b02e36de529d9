package usecase

import (
	"bakerist/internal/data/repository"
	"bakerist/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Catalog CatalogService
	Order   OrderService
	Report  ReportService
	Zone    DeliveryZoneService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Catalog: NewCatalogService(repo.Product, log),
		Order:   NewOrderService(repo.Order, config, log),
		Report:  NewReportService(repo.Order, log),
		Zone:    NewDeliveryZoneService(repo.DeliveryZone, log),
	}
}
