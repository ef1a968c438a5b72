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

type DirectorService interface {
	Create(ctx context.Context, req *request.CreateDirectorRequest) (*response.DirectorResponse, error)
	GetByID(ctx context.Context, directorID string) (*response.DirectorResponse, error)
	List(ctx context.Context, skip, limit int) ([]response.DirectorResponse, error)
	Update(ctx context.Context, directorID string, req *request.UpdateDirectorRequest) (*response.DirectorResponse, error)
	Delete(ctx context.Context, directorID string) error
	LinkPlay(ctx context.Context, directorID, playID string) error
	UnlinkPlay(ctx context.Context, directorID, playID string) error
}

type directorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDirectorService(repo *repository.Repository, log *zap.Logger) DirectorService {
	return &directorService{
		repo: repo,
		log:  log.With(zap.String("service", "director")),
	}
}

func (s *directorService) Create(ctx context.Context, req *request.CreateDirectorRequest) (*response.DirectorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create director validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	director := &entity.Director{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		BirthYear:   req.BirthYear,
		Citizenship: req.Citizenship,
	}

	if err := s.repo.Director.Create(ctx, director); err != nil {
		return nil, fmt.Errorf("create director: %w", err)
	}

	s.log.Info("Director created",
		zap.String("director_id", director.ID.String()),
		zap.String("name", director.Name))

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) GetByID(ctx context.Context, directorID string) (*response.DirectorResponse, error) {
	id, err := uuid.Parse(directorID)
	if err != nil {
		return nil, fmt.Errorf("invalid director ID %s: %w", directorID, err)
	}

	director, err := s.repo.Director.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, fmt.Errorf("director %s: %w", directorID, repository.ErrNotFound)
	}

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) List(ctx context.Context, skip, limit int) ([]response.DirectorResponse, error) {
	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	directors, err := s.repo.Director.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list directors: %w", err)
	}

	return response.DirectorsToResponse(directors), nil
}

func (s *directorService) Update(ctx context.Context, directorID string, req *request.UpdateDirectorRequest) (*response.DirectorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update director validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(directorID)
	if err != nil {
		return nil, fmt.Errorf("invalid director ID %s: %w", directorID, err)
	}

	director, err := s.repo.Director.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, fmt.Errorf("director %s: %w", directorID, repository.ErrNotFound)
	}

	if req.Name != nil {
		director.Name = *req.Name
	}
	if req.BirthYear != nil {
		director.BirthYear = *req.BirthYear
	}
	if req.Citizenship != nil {
		director.Citizenship = *req.Citizenship
	}
	director.UpdatedAt = time.Now()

	if err := s.repo.Director.Update(ctx, director); err != nil {
		return nil, fmt.Errorf("update director: %w", err)
	}

	s.log.Info("Director updated", zap.String("director_id", directorID))

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) Delete(ctx context.Context, directorID string) error {
	id, err := uuid.Parse(directorID)
	if err != nil {
		return fmt.Errorf("invalid director ID %s: %w", directorID, err)
	}

	if err := s.repo.Director.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete director: %w", err)
	}

	return nil
}

func (s *directorService) LinkPlay(ctx context.Context, directorID, playID string) error {
	did, err := uuid.Parse(directorID)
	if err != nil {
		return fmt.Errorf("invalid director ID %s: %w", directorID, err)
	}
	pid, err := uuid.Parse(playID)
	if err != nil {
		return fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	if err := s.repo.Director.LinkPlay(ctx, did, pid); err != nil {
		return fmt.Errorf("link director to play: %w", err)
	}

	s.log.Info("Director linked to play",
		zap.String("director_id", directorID),
		zap.String("play_id", playID))
	return nil
}

func (s *directorService) UnlinkPlay(ctx context.Context, directorID, playID string) error {
	did, err := uuid.Parse(directorID)
	if err != nil {
		return fmt.Errorf("invalid director ID %s: %w", directorID, err)
	}
	pid, err := uuid.Parse(playID)
	if err != nil {
		return fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	if err := s.repo.Director.UnlinkPlay(ctx, did, pid); err != nil {
		return fmt.Errorf("unlink director from play: %w", err)
	}

	return nil
}
