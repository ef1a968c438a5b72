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

type ActorService interface {
	Create(ctx context.Context, req *request.CreateActorRequest) (*response.ActorResponse, error)
	GetByID(ctx context.Context, actorID string) (*response.ActorResponse, error)
	List(ctx context.Context, skip, limit int) ([]response.ActorResponse, error)
	Update(ctx context.Context, actorID string, req *request.UpdateActorRequest) (*response.ActorResponse, error)
	// Delete refuses while the actor is linked to any play; the error
	// names the blocking titles.
	Delete(ctx context.Context, actorID string) error
	LinkPlay(ctx context.Context, actorID, playID string) error
	UnlinkPlay(ctx context.Context, actorID, playID string) error
}

type actorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActorService(repo *repository.Repository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) Create(ctx context.Context, req *request.CreateActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	actor := &entity.Actor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:      req.Name,
		Gender:    req.Gender,
		BirthYear: req.BirthYear,
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("name", actor.Name))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) GetByID(ctx context.Context, actorID string) (*response.ActorResponse, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID %s: %w", actorID, err)
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("actor %s: %w", actorID, repository.ErrNotFound)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) List(ctx context.Context, skip, limit int) ([]response.ActorResponse, error) {
	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	actors, err := s.repo.Actor.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}

	return response.ActorsToResponse(actors), nil
}

func (s *actorService) Update(ctx context.Context, actorID string, req *request.UpdateActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID %s: %w", actorID, err)
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("actor %s: %w", actorID, repository.ErrNotFound)
	}

	if req.Name != nil {
		actor.Name = *req.Name
	}
	if req.Gender != nil {
		actor.Gender = *req.Gender
	}
	if req.BirthYear != nil {
		actor.BirthYear = *req.BirthYear
	}
	actor.UpdatedAt = time.Now()

	if err := s.repo.Actor.Update(ctx, actor); err != nil {
		return nil, fmt.Errorf("update actor: %w", err)
	}

	s.log.Info("Actor updated", zap.String("actor_id", actorID))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) Delete(ctx context.Context, actorID string) error {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID %s: %w", actorID, err)
	}

	if err := s.repo.Actor.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}

	return nil
}

func (s *actorService) LinkPlay(ctx context.Context, actorID, playID string) error {
	aid, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID %s: %w", actorID, err)
	}
	pid, err := uuid.Parse(playID)
	if err != nil {
		return fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	if err := s.repo.Actor.LinkPlay(ctx, aid, pid); err != nil {
		return fmt.Errorf("link actor to play: %w", err)
	}

	s.log.Info("Actor linked to play",
		zap.String("actor_id", actorID),
		zap.String("play_id", playID))
	return nil
}

func (s *actorService) UnlinkPlay(ctx context.Context, actorID, playID string) error {
	aid, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID %s: %w", actorID, err)
	}
	pid, err := uuid.Parse(playID)
	if err != nil {
		return fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	if err := s.repo.Actor.UnlinkPlay(ctx, aid, pid); err != nil {
		return fmt.Errorf("unlink actor from play: %w", err)
	}

	return nil
}
