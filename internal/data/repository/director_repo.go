package repository

import (
	"context"
	"fmt"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *entity.Director) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Director, error)
	FindAll(ctx context.Context, skip, limit int) ([]*entity.Director, error)
	Update(ctx context.Context, director *entity.Director) error
	Delete(ctx context.Context, id uuid.UUID) error

	LinkPlay(ctx context.Context, directorID, playID uuid.UUID) error
	UnlinkPlay(ctx context.Context, directorID, playID uuid.UUID) error
}

type directorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDirectorRepository(db database.PgxIface, log *zap.Logger) DirectorRepository {
	return &directorRepository{
		db:  db,
		log: log.With(zap.String("repository", "director")),
	}
}

func (r *directorRepository) Create(ctx context.Context, director *entity.Director) error {
	query := `
		INSERT INTO directors (id, name, birth_year, citizenship, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		director.ID,
		director.Name,
		director.BirthYear,
		director.Citizenship,
		director.CreatedAt,
		director.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create director",
			zap.Error(err),
			zap.String("name", director.Name),
		)
		return fmt.Errorf("create director %s: %w", director.Name, err)
	}

	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Director, error) {
	query := `
		SELECT id, name, birth_year, citizenship, created_at, updated_at
		FROM directors
		WHERE id = $1
	`

	var director entity.Director
	err := r.db.QueryRow(ctx, query, id).Scan(
		&director.ID,
		&director.Name,
		&director.BirthYear,
		&director.Citizenship,
		&director.CreatedAt,
		&director.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.String("director_id", id.String()),
		)
		return nil, fmt.Errorf("find director by ID %s: %w", id.String(), err)
	}

	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.Director, error) {
	query := `
		SELECT id, name, birth_year, citizenship, created_at, updated_at
		FROM directors
		ORDER BY name
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		r.log.Error("Failed to list directors",
			zap.Error(err),
			zap.Int("skip", skip),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list directors: %w", err)
	}
	defer rows.Close()

	var directors []*entity.Director
	for rows.Next() {
		var director entity.Director
		err := rows.Scan(
			&director.ID,
			&director.Name,
			&director.BirthYear,
			&director.Citizenship,
			&director.CreatedAt,
			&director.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan director row", zap.Error(err))
			return nil, fmt.Errorf("scan director row: %w", err)
		}
		directors = append(directors, &director)
	}

	return directors, nil
}

func (r *directorRepository) Update(ctx context.Context, director *entity.Director) error {
	query := `
		UPDATE directors
		SET name = $2, birth_year = $3, citizenship = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		director.ID,
		director.Name,
		director.BirthYear,
		director.Citizenship,
		director.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update director",
			zap.Error(err),
			zap.String("director_id", director.ID.String()),
		)
		return fmt.Errorf("update director %s: %w", director.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("director %s: %w", director.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *directorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM directors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete director",
			zap.Error(err),
			zap.String("director_id", id.String()),
		)
		return fmt.Errorf("delete director %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("director %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Director deleted", zap.String("director_id", id.String()))
	return nil
}

func (r *directorRepository) LinkPlay(ctx context.Context, directorID, playID uuid.UUID) error {
	query := `INSERT INTO director_play (director_id, play_id) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, directorID, playID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("director already linked to play: %w", ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("director or play: %w", ErrNotFound)
		}
		r.log.Error("Failed to link director to play",
			zap.Error(err),
			zap.String("director_id", directorID.String()),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("link director %s to play %s: %w", directorID.String(), playID.String(), err)
	}

	return nil
}

func (r *directorRepository) UnlinkPlay(ctx context.Context, directorID, playID uuid.UUID) error {
	query := `DELETE FROM director_play WHERE director_id = $1 AND play_id = $2`

	result, err := r.db.Exec(ctx, query, directorID, playID)
	if err != nil {
		r.log.Error("Failed to unlink director from play",
			zap.Error(err),
			zap.String("director_id", directorID.String()),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("unlink director %s from play %s: %w", directorID.String(), playID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("director-play link: %w", ErrNotFound)
	}

	return nil
}
