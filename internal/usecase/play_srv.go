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

type PlayService interface {
	Create(ctx context.Context, req *request.CreatePlayRequest) (*response.PlayResponse, error)
	GetByID(ctx context.Context, playID string) (*response.PlayResponse, error)
	List(ctx context.Context, skip, limit int) ([]response.PlayResponse, error)
	Update(ctx context.Context, playID string, req *request.UpdatePlayRequest) (*response.PlayResponse, error)
	// Delete removes the play and, through the store cascades, its
	// showtimes and their prices and tickets.
	Delete(ctx context.Context, playID string) error
}

type playService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPlayService(repo *repository.Repository, log *zap.Logger) PlayService {
	return &playService{
		repo: repo,
		log:  log.With(zap.String("service", "play")),
	}
}

func (s *playService) Create(ctx context.Context, req *request.CreatePlayRequest) (*response.PlayResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create play validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	play := &entity.Play{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:    req.Title,
		Duration: req.Duration,
		Price:    req.Price,
		Genre:    req.Genre,
		Synopsis: req.Synopsis,
	}

	if err := s.repo.Play.Create(ctx, play); err != nil {
		return nil, fmt.Errorf("create play: %w", err)
	}

	s.log.Info("Play created",
		zap.String("play_id", play.ID.String()),
		zap.String("title", play.Title))

	resp := response.PlayToResponse(play)
	return &resp, nil
}

func (s *playService) GetByID(ctx context.Context, playID string) (*response.PlayResponse, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find play: %w", err)
	}
	if play == nil {
		return nil, fmt.Errorf("play %s: %w", playID, repository.ErrNotFound)
	}

	resp := response.PlayToResponse(play)
	return &resp, nil
}

func (s *playService) List(ctx context.Context, skip, limit int) ([]response.PlayResponse, error) {
	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	plays, err := s.repo.Play.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list plays: %w", err)
	}

	return response.PlaysToResponse(plays), nil
}

func (s *playService) Update(ctx context.Context, playID string, req *request.UpdatePlayRequest) (*response.PlayResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update play validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find play: %w", err)
	}
	if play == nil {
		return nil, fmt.Errorf("play %s: %w", playID, repository.ErrNotFound)
	}

	// Field-level partial update
	if req.Title != nil {
		play.Title = *req.Title
	}
	if req.Duration != nil {
		play.Duration = *req.Duration
	}
	if req.Price != nil {
		play.Price = *req.Price
	}
	if req.Genre != nil {
		play.Genre = *req.Genre
	}
	if req.Synopsis != nil {
		play.Synopsis = *req.Synopsis
	}
	play.UpdatedAt = time.Now()

	if err := s.repo.Play.Update(ctx, play); err != nil {
		return nil, fmt.Errorf("update play: %w", err)
	}

	s.log.Info("Play updated", zap.String("play_id", playID))

	resp := response.PlayToResponse(play)
	return &resp, nil
}

func (s *playService) Delete(ctx context.Context, playID string) error {
	id, err := uuid.Parse(playID)
	if err != nil {
		return fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	if err := s.repo.Play.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete play: %w", err)
	}

	s.log.Info("Play deleted with showtimes, prices and tickets",
		zap.String("play_id", playID))
	return nil
}
