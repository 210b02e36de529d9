package adaptor

import (
	"bakerist/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Product *ProductHandler
	Order   *OrderHandler
	Report  *ReportHandler
	Zone    *DeliveryZoneHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Product: NewProductHandler(service.Catalog, log),
		Order:   NewOrderHandler(service.Order, log),
		Report:  NewReportHandler(service.Report, log),
		Zone:    NewDeliveryZoneHandler(service.Zone, log),
	}
}
