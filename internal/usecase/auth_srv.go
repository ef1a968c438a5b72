package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Customer.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already registered: %w", req.Email, repository.ErrConflict)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		TelephoneNo:  req.TelephoneNo,
		Role:         entity.RoleCustomer,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("Customer registered",
		zap.String("customer_id", customer.ID.String()),
		zap.String("email", customer.Email))

	return s.buildAuthResponse(customer)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := s.repo.Customer.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	if customer == nil || !utils.CheckPasswordHash(req.Password, customer.PasswordHash) {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	s.log.Info("Customer logged in",
		zap.String("customer_id", customer.ID.String()),
		zap.String("email", customer.Email))

	return s.buildAuthResponse(customer)
}

func (s *authService) buildAuthResponse(customer *entity.Customer) (*response.AuthResponse, error) {
	token, err := utils.GenerateAccessToken(
		s.config.JWT.Secret,
		customer.ID,
		string(customer.Role),
		s.config.JWT.ExpiryHours,
	)
	if err != nil {
		s.log.Error("Failed to sign access token",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()))
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &response.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Customer:    response.CustomerToResponse(customer),
	}, nil
}
