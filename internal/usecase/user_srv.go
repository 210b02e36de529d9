package usecase

import (
	"context"
	"fmt"

	"bakerist/internal/data/entity"
	"bakerist/internal/data/repository"
	"bakerist/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	ListCustomers(ctx context.Context) ([]response.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

// ListCustomers returns every customer account, newest first, without
// password hashes.
func (s *userService) ListCustomers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.FindByRole(ctx, entity.RoleCustomer)
	if err != nil {
		s.log.Error("Failed to list customers", zap.Error(err))
		return nil, fmt.Errorf("failed to list customers")
	}

	customers := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		customers = append(customers, response.UserToResponse(user))
	}

	return customers, nil
}
