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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email is free
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user entity; role is always customer, admins are seeded
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
		ContactNo:    req.ContactNo,
		Barangay:     req.Barangay,
		Sitio:        req.Sitio,
	}

	// 5. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.authenticate(ctx, req, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(s.config.JWT.CustomerExpiryHours) * time.Hour
	return s.issueToken(user, ttl)
}

// AdminLogin matches only admin rows, so a customer with the same email
// can never obtain an admin token here.
func (s *authService) AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.authenticate(ctx, req, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(s.config.JWT.AdminExpiryHours) * time.Hour
	return s.issueToken(user, ttl)
}

// ==================== HELPER METHODS ====================

func (s *authService) authenticate(ctx context.Context, req *request.LoginRequest, role entity.UserRole) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmailAndRole(ctx, req.Email, role)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	if user == nil {
		s.log.Warn("User not found for login",
			zap.String("email", req.Email),
			zap.String("role", string(role)))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	return user, nil
}

func (s *authService) issueToken(user *entity.User, ttl time.Duration) (*response.AuthResponse, error) {
	token, err := utils.GenerateToken(
		s.config.JWT.Secret,
		user.ID.String(),
		user.Email,
		string(user.Role),
		ttl,
	)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
		User:      response.UserToResponse(user),
	}, nil
}
