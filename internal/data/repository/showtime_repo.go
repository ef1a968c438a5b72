package repository

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowTimeRepository interface {
	Create(ctx context.Context, showtime *entity.ShowTime) error
	Find(ctx context.Context, playID uuid.UUID, dateAndTime time.Time) (*entity.ShowTime, error)
	FindAll(ctx context.Context, skip, limit int) ([]*entity.ShowTime, error)
	FindForPlay(ctx context.Context, playID uuid.UUID, skip, limit int) ([]*entity.ShowTime, error)
	// UpdateSlot moves a showtime to a new date and time. Price and
	// ticket rows stay on the old slot and are removed with it.
	UpdateSlot(ctx context.Context, playID uuid.UUID, origDateAndTime, newDateAndTime time.Time) error
	// Delete removes the showtime and, through FK cascades, its
	// price and ticket rows.
	Delete(ctx context.Context, playID uuid.UUID, dateAndTime time.Time) error
}

type showTimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowTimeRepository(db database.PgxIface, log *zap.Logger) ShowTimeRepository {
	return &showTimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showTimeRepository) Create(ctx context.Context, showtime *entity.ShowTime) error {
	query := `INSERT INTO showtimes (play_id, date_and_time) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, showtime.PlayID, showtime.DateAndTime)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("showtime already exists for this play at %s: %w",
				showtime.DateAndTime.Format(time.RFC3339), ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("play %s: %w", showtime.PlayID.String(), ErrNotFound)
		}
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("play_id", showtime.PlayID.String()),
			zap.Time("date_and_time", showtime.DateAndTime),
		)
		return fmt.Errorf("create showtime for play %s: %w", showtime.PlayID.String(), err)
	}

	return nil
}

func (r *showTimeRepository) Find(ctx context.Context, playID uuid.UUID, dateAndTime time.Time) (*entity.ShowTime, error) {
	query := `SELECT play_id, date_and_time FROM showtimes WHERE play_id = $1 AND date_and_time = $2`

	var showtime entity.ShowTime
	err := r.db.QueryRow(ctx, query, playID, dateAndTime).Scan(&showtime.PlayID, &showtime.DateAndTime)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime",
			zap.Error(err),
			zap.String("play_id", playID.String()),
			zap.Time("date_and_time", dateAndTime),
		)
		return nil, fmt.Errorf("find showtime for play %s: %w", playID.String(), err)
	}

	return &showtime, nil
}

func (r *showTimeRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.ShowTime, error) {
	query := `
		SELECT play_id, date_and_time
		FROM showtimes
		ORDER BY date_and_time
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		r.log.Error("Failed to list showtimes",
			zap.Error(err),
			zap.Int("skip", skip),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list showtimes: %w", err)
	}
	defer rows.Close()

	return scanShowTimes(rows, r.log)
}

func (r *showTimeRepository) FindForPlay(ctx context.Context, playID uuid.UUID, skip, limit int) ([]*entity.ShowTime, error) {
	query := `
		SELECT play_id, date_and_time
		FROM showtimes
		WHERE play_id = $1
		ORDER BY date_and_time
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, playID, skip, limit)
	if err != nil {
		r.log.Error("Failed to list showtimes for play",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return nil, fmt.Errorf("list showtimes for play %s: %w", playID.String(), err)
	}
	defer rows.Close()

	return scanShowTimes(rows, r.log)
}

func (r *showTimeRepository) UpdateSlot(ctx context.Context, playID uuid.UUID, origDateAndTime, newDateAndTime time.Time) error {
	query := `UPDATE showtimes SET date_and_time = $3 WHERE play_id = $1 AND date_and_time = $2`

	result, err := r.db.Exec(ctx, query, playID, origDateAndTime, newDateAndTime)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("showtime already exists for this play at %s: %w",
				newDateAndTime.Format(time.RFC3339), ErrConflict)
		}
		r.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.String("play_id", playID.String()),
			zap.Time("orig", origDateAndTime),
			zap.Time("new", newDateAndTime),
		)
		return fmt.Errorf("update showtime for play %s: %w", playID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime for play %s at %s: %w",
			playID.String(), origDateAndTime.Format(time.RFC3339), ErrNotFound)
	}

	return nil
}

func (r *showTimeRepository) Delete(ctx context.Context, playID uuid.UUID, dateAndTime time.Time) error {
	query := `DELETE FROM showtimes WHERE play_id = $1 AND date_and_time = $2`

	result, err := r.db.Exec(ctx, query, playID, dateAndTime)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("play_id", playID.String()),
			zap.Time("date_and_time", dateAndTime),
		)
		return fmt.Errorf("delete showtime for play %s: %w", playID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime for play %s at %s: %w",
			playID.String(), dateAndTime.Format(time.RFC3339), ErrNotFound)
	}

	r.log.Info("Showtime deleted",
		zap.String("play_id", playID.String()),
		zap.Time("date_and_time", dateAndTime))
	return nil
}

func scanShowTimes(rows pgx.Rows, log *zap.Logger) ([]*entity.ShowTime, error) {
	var showtimes []*entity.ShowTime
	for rows.Next() {
		var showtime entity.ShowTime
		if err := rows.Scan(&showtime.PlayID, &showtime.DateAndTime); err != nil {
			log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}
	return showtimes, nil
}
