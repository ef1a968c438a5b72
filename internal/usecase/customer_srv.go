package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerService is the admin-facing account management surface.
// Self-service registration lives in AuthService.
type CustomerService interface {
	List(ctx context.Context, skip, limit int) ([]response.CustomerResponse, error)
	GetByID(ctx context.Context, customerID string) (*response.CustomerResponse, error)
	Update(ctx context.Context, customerID string, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error)
	Delete(ctx context.Context, customerID string) error
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) List(ctx context.Context, skip, limit int) ([]response.CustomerResponse, error) {
	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	customers, err := s.repo.Customer.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	out := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		out[i] = response.CustomerToResponse(customer)
	}
	return out, nil
}

func (s *customerService) GetByID(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID %s: %w", customerID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, repository.ErrNotFound)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) Update(ctx context.Context, customerID string, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID %s: %w", customerID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, repository.ErrNotFound)
	}

	// Field-level partial update
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("process password: %w", err)
		}
		customer.PasswordHash = hashed
	}
	if req.TelephoneNo != nil {
		customer.TelephoneNo = req.TelephoneNo
	}
	customer.UpdatedAt = time.Now()

	if err := s.repo.Customer.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.Info("Customer updated", zap.String("customer_id", customerID))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) Delete(ctx context.Context, customerID string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return fmt.Errorf("invalid customer ID %s: %w", customerID, err)
	}

	if err := s.repo.Customer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	return nil
}
