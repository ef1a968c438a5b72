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

type PricingService interface {
	Create(ctx context.Context, req *request.CreatePriceRequest) (*response.PriceResponse, error)
	Get(ctx context.Context, req *request.PriceKeyRequest) (*response.PriceResponse, error)
	ListForShowtime(ctx context.Context, playID string, dateAndTime time.Time, skip, limit int) ([]response.PriceResponse, error)
	Update(ctx context.Context, req *request.CreatePriceRequest) (*response.PriceResponse, error)
	Delete(ctx context.Context, req *request.PriceKeyRequest) error
}

type pricingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPricingService(repo *repository.Repository, log *zap.Logger) PricingService {
	return &pricingService{
		repo: repo,
		log:  log.With(zap.String("service", "pricing")),
	}
}

func (s *pricingService) Create(ctx context.Context, req *request.CreatePriceRequest) (*response.PriceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create price validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	price := &entity.ShowTimePrice{
		RowNo:       req.RowNo,
		SeatNo:      req.SeatNo,
		PlayID:      playID,
		DateAndTime: req.DateAndTime,
		Price:       req.Price,
	}

	if err := s.repo.Price.Create(ctx, price); err != nil {
		return nil, fmt.Errorf("create price: %w", err)
	}

	s.log.Info("Showtime price created",
		zap.Int("row_no", req.RowNo),
		zap.Int("seat_no", req.SeatNo),
		zap.String("play_id", req.PlayID),
		zap.Float64("price", req.Price))

	resp := response.PriceToResponse(price)
	return &resp, nil
}

func (s *pricingService) Get(ctx context.Context, req *request.PriceKeyRequest) (*response.PriceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	price, err := s.repo.Price.Find(ctx, req.RowNo, req.SeatNo, playID, req.DateAndTime)
	if err != nil {
		return nil, fmt.Errorf("find price: %w", err)
	}
	if price == nil {
		return nil, fmt.Errorf("price for seat %d/%d: %w", req.RowNo, req.SeatNo, repository.ErrNotFound)
	}

	resp := response.PriceToResponse(price)
	return &resp, nil
}

func (s *pricingService) ListForShowtime(ctx context.Context, playID string, dateAndTime time.Time, skip, limit int) ([]response.PriceResponse, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	prices, err := s.repo.Price.FindForShowtime(ctx, id, dateAndTime, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list prices for showtime: %w", err)
	}

	return response.PricesToResponse(prices), nil
}

func (s *pricingService) Update(ctx context.Context, req *request.CreatePriceRequest) (*response.PriceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update price validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	if err := s.repo.Price.UpdatePrice(ctx, req.RowNo, req.SeatNo, playID, req.DateAndTime, req.Price); err != nil {
		return nil, fmt.Errorf("update price: %w", err)
	}

	s.log.Info("Showtime price updated",
		zap.Int("row_no", req.RowNo),
		zap.Int("seat_no", req.SeatNo),
		zap.String("play_id", req.PlayID),
		zap.Float64("price", req.Price))

	resp := response.PriceResponse{
		RowNo:       req.RowNo,
		SeatNo:      req.SeatNo,
		PlayID:      req.PlayID,
		DateAndTime: req.DateAndTime,
		Price:       req.Price,
	}
	return &resp, nil
}

func (s *pricingService) Delete(ctx context.Context, req *request.PriceKeyRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	if err := s.repo.Price.Delete(ctx, req.RowNo, req.SeatNo, playID, req.DateAndTime); err != nil {
		return fmt.Errorf("delete price: %w", err)
	}

	return nil
}
