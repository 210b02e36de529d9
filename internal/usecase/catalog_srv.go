package usecase

import (
	"context"
	"fmt"

	"bakerist/internal/data/entity"
	"bakerist/internal/data/repository"
	"bakerist/internal/dto/request"
	"bakerist/internal/dto/response"
	"bakerist/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListAvailable(ctx context.Context, category, search string) ([]response.ProductResponse, error)
	ListAll(ctx context.Context) ([]response.ProductResponse, error)
	Update(ctx context.Context, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	SetAvailability(ctx context.Context, req *request.ToggleProductRequest) (*response.ProductResponse, error)
}

type catalogService struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewCatalogService(repo repository.ProductRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

func (s *catalogService) ListAvailable(ctx context.Context, category, search string) ([]response.ProductResponse, error) {
	products, err := s.repo.FindAvailable(ctx, category, search)
	if err != nil {
		s.log.Error("Failed to list available products",
			zap.Error(err),
			zap.String("category", category),
			zap.String("search", search))
		return nil, fmt.Errorf("failed to list products")
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) ListAll(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all products", zap.Error(err))
		return nil, fmt.Errorf("failed to list products")
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) Update(ctx context.Context, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID")
	}

	product := &entity.Product{
		Base:        entity.Base{ID: id},
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Options:     req.Options,
		Available:   req.Available,
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", req.ID))
		return nil, fmt.Errorf("failed to update product")
	}
	if updated == nil {
		return nil, fmt.Errorf("product not found")
	}

	s.log.Info("Product updated",
		zap.String("product_id", updated.ID.String()),
		zap.String("name", updated.Name))

	resp := response.ProductToResponse(updated)
	return &resp, nil
}

func (s *catalogService) SetAvailability(ctx context.Context, req *request.ToggleProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Toggle product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID")
	}

	updated, err := s.repo.SetAvailability(ctx, id, *req.Available)
	if err != nil {
		s.log.Error("Failed to toggle product availability",
			zap.Error(err),
			zap.String("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to update product")
	}
	if updated == nil {
		return nil, fmt.Errorf("product not found")
	}

	s.log.Info("Product availability changed",
		zap.String("product_id", updated.ID.String()),
		zap.Bool("available", updated.Available))

	resp := response.ProductToResponse(updated)
	return &resp, nil
}
