package repository

import (
	"context"
	"fmt"
	"strings"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error)
	FindAll(ctx context.Context, skip, limit int) ([]*entity.Actor, error)
	Update(ctx context.Context, actor *entity.Actor) error
	// Delete fails with ErrRelationshipConflict naming the blocking
	// play titles when the actor is still linked to plays.
	Delete(ctx context.Context, id uuid.UUID) error

	FindPlays(ctx context.Context, actorID uuid.UUID) ([]*entity.Play, error)
	LinkPlay(ctx context.Context, actorID, playID uuid.UUID) error
	UnlinkPlay(ctx context.Context, actorID, playID uuid.UUID) error
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	query := `
		INSERT INTO actors (id, name, gender, birth_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.Gender,
		actor.BirthYear,
		actor.CreatedAt,
		actor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.Name),
		)
		return fmt.Errorf("create actor %s: %w", actor.Name, err)
	}

	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	query := `
		SELECT id, name, gender, birth_year, created_at, updated_at
		FROM actors
		WHERE id = $1
	`

	var actor entity.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&actor.ID,
		&actor.Name,
		&actor.Gender,
		&actor.BirthYear,
		&actor.CreatedAt,
		&actor.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return nil, fmt.Errorf("find actor by ID %s: %w", id.String(), err)
	}

	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.Actor, error) {
	query := `
		SELECT id, name, gender, birth_year, created_at, updated_at
		FROM actors
		ORDER BY name
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		r.log.Error("Failed to list actors",
			zap.Error(err),
			zap.Int("skip", skip),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list actors: %w", err)
	}
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		err := rows.Scan(
			&actor.ID,
			&actor.Name,
			&actor.Gender,
			&actor.BirthYear,
			&actor.CreatedAt,
			&actor.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, &actor)
	}

	return actors, nil
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	query := `
		UPDATE actors
		SET name = $2, gender = $3, birth_year = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.Gender,
		actor.BirthYear,
		actor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.String("actor_id", actor.ID.String()),
		)
		return fmt.Errorf("update actor %s: %w", actor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %s: %w", actor.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// The delete guard: an actor linked to plays must not be removed
	// and the error names every blocking title.
	plays, err := r.FindPlays(ctx, id)
	if err != nil {
		return err
	}
	if len(plays) > 0 {
		titles := make([]string, len(plays))
		for i, play := range plays {
			titles[i] = play.Title
		}
		return fmt.Errorf("actor is associated with plays: %s: %w",
			strings.Join(titles, ", "), ErrRelationshipConflict)
	}

	result, err := r.db.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		// The RESTRICT foreign key on actor_play backstops the check
		// above: a link inserted after the check blocks the delete here.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("actor is associated with plays: %w", ErrRelationshipConflict)
		}
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return fmt.Errorf("delete actor %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Actor deleted", zap.String("actor_id", id.String()))
	return nil
}

func (r *actorRepository) FindPlays(ctx context.Context, actorID uuid.UUID) ([]*entity.Play, error) {
	query := `
		SELECT p.id, p.title, p.duration, p.price, p.genre, p.synopsis, p.created_at, p.updated_at
		FROM plays p
		JOIN actor_play ap ON ap.play_id = p.id
		WHERE ap.actor_id = $1
		ORDER BY p.title
	`

	rows, err := r.db.Query(ctx, query, actorID)
	if err != nil {
		r.log.Error("Failed to find plays for actor",
			zap.Error(err),
			zap.String("actor_id", actorID.String()),
		)
		return nil, fmt.Errorf("find plays for actor %s: %w", actorID.String(), err)
	}
	defer rows.Close()

	var plays []*entity.Play
	for rows.Next() {
		var play entity.Play
		err := rows.Scan(
			&play.ID,
			&play.Title,
			&play.Duration,
			&play.Price,
			&play.Genre,
			&play.Synopsis,
			&play.CreatedAt,
			&play.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan play row", zap.Error(err))
			return nil, fmt.Errorf("scan play row: %w", err)
		}
		plays = append(plays, &play)
	}

	return plays, nil
}

func (r *actorRepository) LinkPlay(ctx context.Context, actorID, playID uuid.UUID) error {
	query := `INSERT INTO actor_play (actor_id, play_id) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, actorID, playID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("actor already linked to play: %w", ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("actor or play: %w", ErrNotFound)
		}
		r.log.Error("Failed to link actor to play",
			zap.Error(err),
			zap.String("actor_id", actorID.String()),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("link actor %s to play %s: %w", actorID.String(), playID.String(), err)
	}

	return nil
}

func (r *actorRepository) UnlinkPlay(ctx context.Context, actorID, playID uuid.UUID) error {
	query := `DELETE FROM actor_play WHERE actor_id = $1 AND play_id = $2`

	result, err := r.db.Exec(ctx, query, actorID, playID)
	if err != nil {
		r.log.Error("Failed to unlink actor from play",
			zap.Error(err),
			zap.String("actor_id", actorID.String()),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("unlink actor %s from play %s: %w", actorID.String(), playID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor-play link: %w", ErrNotFound)
	}

	return nil
}
