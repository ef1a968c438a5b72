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

type PriceRepository interface {
	Create(ctx context.Context, price *entity.ShowTimePrice) error
	Find(ctx context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time) (*entity.ShowTimePrice, error)
	FindForShowtime(ctx context.Context, playID uuid.UUID, dateAndTime time.Time, skip, limit int) ([]*entity.ShowTimePrice, error)
	// UpdatePrice replaces the price field only.
	UpdatePrice(ctx context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time, price float64) error
	Delete(ctx context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time) error
}

type priceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPriceRepository(db database.PgxIface, log *zap.Logger) PriceRepository {
	return &priceRepository{
		db:  db,
		log: log.With(zap.String("repository", "price")),
	}
}

func (r *priceRepository) Create(ctx context.Context, price *entity.ShowTimePrice) error {
	query := `
		INSERT INTO showtime_prices (row_no, seat_no, play_id, date_and_time, price)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		price.RowNo,
		price.SeatNo,
		price.PlayID,
		price.DateAndTime,
		price.Price,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("price for this seat at this showtime already exists: %w", ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("seat or showtime: %w", ErrNotFound)
		}
		r.log.Error("Failed to create showtime price",
			zap.Error(err),
			zap.Int("row_no", price.RowNo),
			zap.Int("seat_no", price.SeatNo),
			zap.String("play_id", price.PlayID.String()),
		)
		return fmt.Errorf("create price for seat %d/%d: %w", price.RowNo, price.SeatNo, err)
	}

	return nil
}

func (r *priceRepository) Find(ctx context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time) (*entity.ShowTimePrice, error) {
	query := `
		SELECT row_no, seat_no, play_id, date_and_time, price
		FROM showtime_prices
		WHERE row_no = $1 AND seat_no = $2 AND play_id = $3 AND date_and_time = $4
	`

	var price entity.ShowTimePrice
	err := r.db.QueryRow(ctx, query, rowNo, seatNo, playID, dateAndTime).Scan(
		&price.RowNo,
		&price.SeatNo,
		&price.PlayID,
		&price.DateAndTime,
		&price.Price,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime price",
			zap.Error(err),
			zap.Int("row_no", rowNo),
			zap.Int("seat_no", seatNo),
			zap.String("play_id", playID.String()),
		)
		return nil, fmt.Errorf("find price for seat %d/%d: %w", rowNo, seatNo, err)
	}

	return &price, nil
}

func (r *priceRepository) FindForShowtime(ctx context.Context, playID uuid.UUID, dateAndTime time.Time, skip, limit int) ([]*entity.ShowTimePrice, error) {
	query := `
		SELECT row_no, seat_no, play_id, date_and_time, price
		FROM showtime_prices
		WHERE play_id = $1 AND date_and_time = $2
		ORDER BY row_no, seat_no
		OFFSET $3 LIMIT $4
	`

	rows, err := r.db.Query(ctx, query, playID, dateAndTime, skip, limit)
	if err != nil {
		r.log.Error("Failed to list prices for showtime",
			zap.Error(err),
			zap.String("play_id", playID.String()),
			zap.Time("date_and_time", dateAndTime),
		)
		return nil, fmt.Errorf("list prices for showtime: %w", err)
	}
	defer rows.Close()

	var prices []*entity.ShowTimePrice
	for rows.Next() {
		var price entity.ShowTimePrice
		err := rows.Scan(
			&price.RowNo,
			&price.SeatNo,
			&price.PlayID,
			&price.DateAndTime,
			&price.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan price row", zap.Error(err))
			return nil, fmt.Errorf("scan price row: %w", err)
		}
		prices = append(prices, &price)
	}

	return prices, nil
}

func (r *priceRepository) UpdatePrice(ctx context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time, price float64) error {
	query := `
		UPDATE showtime_prices
		SET price = $5
		WHERE row_no = $1 AND seat_no = $2 AND play_id = $3 AND date_and_time = $4
	`

	result, err := r.db.Exec(ctx, query, rowNo, seatNo, playID, dateAndTime, price)
	if err != nil {
		r.log.Error("Failed to update showtime price",
			zap.Error(err),
			zap.Int("row_no", rowNo),
			zap.Int("seat_no", seatNo),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("update price for seat %d/%d: %w", rowNo, seatNo, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("price for seat %d/%d: %w", rowNo, seatNo, ErrNotFound)
	}

	return nil
}

func (r *priceRepository) Delete(ctx context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time) error {
	query := `
		DELETE FROM showtime_prices
		WHERE row_no = $1 AND seat_no = $2 AND play_id = $3 AND date_and_time = $4
	`

	result, err := r.db.Exec(ctx, query, rowNo, seatNo, playID, dateAndTime)
	if err != nil {
		r.log.Error("Failed to delete showtime price",
			zap.Error(err),
			zap.Int("row_no", rowNo),
			zap.Int("seat_no", seatNo),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("delete price for seat %d/%d: %w", rowNo, seatNo, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("price for seat %d/%d: %w", rowNo, seatNo, ErrNotFound)
	}

	return nil
}
