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

type ShowTimeService interface {
	Create(ctx context.Context, req *request.CreateShowTimeRequest) (*response.ShowTimeResponse, error)
	Get(ctx context.Context, playID string, dateAndTime time.Time) (*response.ShowTimeResponse, error)
	List(ctx context.Context, skip, limit int) ([]response.ShowTimeResponse, error)
	ListForPlay(ctx context.Context, playID string, skip, limit int) ([]response.ShowTimeResponse, error)
	Update(ctx context.Context, req *request.UpdateShowTimeRequest) (*response.ShowTimeResponse, error)
	Delete(ctx context.Context, req *request.DeleteShowTimeRequest) error
}

type showTimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowTimeService(repo *repository.Repository, log *zap.Logger) ShowTimeService {
	return &showTimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showTimeService) Create(ctx context.Context, req *request.CreateShowTimeRequest) (*response.ShowTimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	play, err := s.repo.Play.FindByID(ctx, playID)
	if err != nil {
		return nil, fmt.Errorf("find play: %w", err)
	}
	if play == nil {
		return nil, fmt.Errorf("play %s: %w", req.PlayID, repository.ErrNotFound)
	}

	showtime := &entity.ShowTime{
		PlayID:      playID,
		DateAndTime: req.DateAndTime,
	}

	if err := s.repo.ShowTime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("play_id", req.PlayID),
		zap.Time("date_and_time", req.DateAndTime))

	resp := response.ShowTimeToResponse(showtime)
	return &resp, nil
}

func (s *showTimeService) Get(ctx context.Context, playID string, dateAndTime time.Time) (*response.ShowTimeResponse, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	showtime, err := s.repo.ShowTime.Find(ctx, id, dateAndTime)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime for play %s at %s: %w",
			playID, dateAndTime.Format(time.RFC3339), repository.ErrNotFound)
	}

	resp := response.ShowTimeToResponse(showtime)
	return &resp, nil
}

func (s *showTimeService) List(ctx context.Context, skip, limit int) ([]response.ShowTimeResponse, error) {
	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	showtimes, err := s.repo.ShowTime.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list showtimes: %w", err)
	}

	return response.ShowTimesToResponse(showtimes), nil
}

func (s *showTimeService) ListForPlay(ctx context.Context, playID string, skip, limit int) ([]response.ShowTimeResponse, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	showtimes, err := s.repo.ShowTime.FindForPlay(ctx, id, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list showtimes for play: %w", err)
	}

	return response.ShowTimesToResponse(showtimes), nil
}

func (s *showTimeService) Update(ctx context.Context, req *request.UpdateShowTimeRequest) (*response.ShowTimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	if err := s.repo.ShowTime.UpdateSlot(ctx, playID, req.OriginalDateAndTime, req.NewDateAndTime); err != nil {
		return nil, fmt.Errorf("update showtime: %w", err)
	}

	s.log.Info("Showtime moved",
		zap.String("play_id", req.PlayID),
		zap.Time("orig", req.OriginalDateAndTime),
		zap.Time("new", req.NewDateAndTime))

	resp := response.ShowTimeResponse{
		PlayID:      req.PlayID,
		DateAndTime: req.NewDateAndTime,
	}
	return &resp, nil
}

func (s *showTimeService) Delete(ctx context.Context, req *request.DeleteShowTimeRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Delete showtime validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	if err := s.repo.ShowTime.Delete(ctx, playID, req.DateAndTime); err != nil {
		return fmt.Errorf("delete showtime: %w", err)
	}

	s.log.Info("Showtime deleted with prices and tickets",
		zap.String("play_id", req.PlayID),
		zap.Time("date_and_time", req.DateAndTime))
	return nil
}
