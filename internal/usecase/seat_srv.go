package usecase

import (
	"context"
	"errors"
	"fmt"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type SeatService interface {
	// Create is idempotent: registering a position that already exists
	// returns the existing seat instead of failing.
	Create(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error)
	Get(ctx context.Context, rowNo, seatNo int) (*response.SeatResponse, error)
	List(ctx context.Context, skip, limit int) ([]response.SeatResponse, error)
	Update(ctx context.Context, rowNo, seatNo int, req *request.SeatRequest) (*response.SeatResponse, error)
	Delete(ctx context.Context, rowNo, seatNo int) error
	// DeleteAll clears the whole seat map, dropping dependent prices
	// and tickets with it, and reports how many seats were removed.
	DeleteAll(ctx context.Context) (*response.DeleteAllSeatsResponse, error)
}

type seatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatService(repo *repository.Repository, log *zap.Logger) SeatService {
	return &seatService{
		repo: repo,
		log:  log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) Create(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Seat.Find(ctx, req.RowNo, req.SeatNo)
	if err != nil {
		return nil, fmt.Errorf("find seat: %w", err)
	}
	if existing != nil {
		resp := response.SeatToResponse(existing)
		return &resp, nil
	}

	seat := &entity.Seat{RowNo: req.RowNo, SeatNo: req.SeatNo}
	if err := s.repo.Seat.Create(ctx, seat); err != nil {
		// A racing create may land first; the position exists either
		// way, so hand back the row.
		if errors.Is(err, repository.ErrConflict) {
			resp := response.SeatResponse{RowNo: req.RowNo, SeatNo: req.SeatNo}
			return &resp, nil
		}
		return nil, fmt.Errorf("create seat: %w", err)
	}

	s.log.Info("Seat created",
		zap.Int("row_no", seat.RowNo),
		zap.Int("seat_no", seat.SeatNo))

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) Get(ctx context.Context, rowNo, seatNo int) (*response.SeatResponse, error) {
	seat, err := s.repo.Seat.Find(ctx, rowNo, seatNo)
	if err != nil {
		return nil, fmt.Errorf("find seat: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat %d/%d: %w", rowNo, seatNo, repository.ErrNotFound)
	}

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) List(ctx context.Context, skip, limit int) ([]response.SeatResponse, error) {
	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	seats, err := s.repo.Seat.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}

	return response.SeatsToResponse(seats), nil
}

func (s *seatService) Update(ctx context.Context, rowNo, seatNo int, req *request.SeatRequest) (*response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.repo.Seat.UpdateKey(ctx, rowNo, seatNo, req.RowNo, req.SeatNo); err != nil {
		return nil, fmt.Errorf("update seat: %w", err)
	}

	s.log.Info("Seat moved",
		zap.Int("row_no", rowNo),
		zap.Int("seat_no", seatNo),
		zap.Int("new_row_no", req.RowNo),
		zap.Int("new_seat_no", req.SeatNo))

	resp := response.SeatResponse{RowNo: req.RowNo, SeatNo: req.SeatNo}
	return &resp, nil
}

func (s *seatService) Delete(ctx context.Context, rowNo, seatNo int) error {
	if err := s.repo.Seat.Delete(ctx, rowNo, seatNo); err != nil {
		return fmt.Errorf("delete seat: %w", err)
	}
	return nil
}

func (s *seatService) DeleteAll(ctx context.Context) (*response.DeleteAllSeatsResponse, error) {
	count, err := s.repo.Seat.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete all seats: %w", err)
	}

	s.log.Info("Seat map cleared", zap.Int64("deleted_count", count))
	return &response.DeleteAllSeatsResponse{DeletedCount: count}, nil
}
