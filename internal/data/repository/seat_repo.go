package repository

import (
	"context"
	"fmt"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	Find(ctx context.Context, rowNo, seatNo int) (*entity.Seat, error)
	FindAll(ctx context.Context, skip, limit int) ([]*entity.Seat, error)
	// FindEvery returns the whole seat map without pagination, for
	// availability views that must cover every seat.
	FindEvery(ctx context.Context) ([]*entity.Seat, error)
	// UpdateKey moves a seat to a new (row, seat) position. Price and
	// ticket references follow through ON UPDATE CASCADE.
	UpdateKey(ctx context.Context, rowNo, seatNo, newRowNo, newSeatNo int) error
	Delete(ctx context.Context, rowNo, seatNo int) error
	// DeleteAll removes every seat and returns the count removed.
	// Dependent price and ticket rows are dropped by the FK cascades.
	DeleteAll(ctx context.Context) (int64, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `INSERT INTO seats (row_no, seat_no) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, seat.RowNo, seat.SeatNo)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("seat row %d seat %d already exists: %w", seat.RowNo, seat.SeatNo, ErrConflict)
		}
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.Int("row_no", seat.RowNo),
			zap.Int("seat_no", seat.SeatNo),
		)
		return fmt.Errorf("create seat %d/%d: %w", seat.RowNo, seat.SeatNo, err)
	}

	return nil
}

func (r *seatRepository) Find(ctx context.Context, rowNo, seatNo int) (*entity.Seat, error) {
	query := `SELECT row_no, seat_no FROM seats WHERE row_no = $1 AND seat_no = $2`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, rowNo, seatNo).Scan(&seat.RowNo, &seat.SeatNo)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat",
			zap.Error(err),
			zap.Int("row_no", rowNo),
			zap.Int("seat_no", seatNo),
		)
		return nil, fmt.Errorf("find seat %d/%d: %w", rowNo, seatNo, err)
	}

	return &seat, nil
}

func (r *seatRepository) FindAll(ctx context.Context, skip, limit int) ([]*entity.Seat, error) {
	query := `
		SELECT row_no, seat_no
		FROM seats
		ORDER BY row_no, seat_no
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		r.log.Error("Failed to list seats",
			zap.Error(err),
			zap.Int("skip", skip),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list seats: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(&seat.RowNo, &seat.SeatNo); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, nil
}

func (r *seatRepository) FindEvery(ctx context.Context) ([]*entity.Seat, error) {
	query := `SELECT row_no, seat_no FROM seats ORDER BY row_no, seat_no`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list every seat", zap.Error(err))
		return nil, fmt.Errorf("list every seat: %w", err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(&seat.RowNo, &seat.SeatNo); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, nil
}

func (r *seatRepository) UpdateKey(ctx context.Context, rowNo, seatNo, newRowNo, newSeatNo int) error {
	query := `UPDATE seats SET row_no = $3, seat_no = $4 WHERE row_no = $1 AND seat_no = $2`

	result, err := r.db.Exec(ctx, query, rowNo, seatNo, newRowNo, newSeatNo)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("seat already exists at row %d seat %d: %w", newRowNo, newSeatNo, ErrConflict)
		}
		r.log.Error("Failed to update seat",
			zap.Error(err),
			zap.Int("row_no", rowNo),
			zap.Int("seat_no", seatNo),
		)
		return fmt.Errorf("update seat %d/%d: %w", rowNo, seatNo, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %d/%d: %w", rowNo, seatNo, ErrNotFound)
	}

	return nil
}

func (r *seatRepository) Delete(ctx context.Context, rowNo, seatNo int) error {
	query := `DELETE FROM seats WHERE row_no = $1 AND seat_no = $2`

	result, err := r.db.Exec(ctx, query, rowNo, seatNo)
	if err != nil {
		r.log.Error("Failed to delete seat",
			zap.Error(err),
			zap.Int("row_no", rowNo),
			zap.Int("seat_no", seatNo),
		)
		return fmt.Errorf("delete seat %d/%d: %w", rowNo, seatNo, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %d/%d: %w", rowNo, seatNo, ErrNotFound)
	}

	r.log.Info("Seat deleted", zap.Int("row_no", rowNo), zap.Int("seat_no", seatNo))
	return nil
}

func (r *seatRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM seats`)
	if err != nil {
		r.log.Error("Failed to delete all seats", zap.Error(err))
		return 0, fmt.Errorf("delete all seats: %w", err)
	}

	count := result.RowsAffected()
	r.log.Info("All seats deleted", zap.Int64("count", count))
	return count, nil
}
