package repository

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// Book checks the referenced seat and showtime and inserts the
	// ticket inside one transaction. Under concurrent attempts for
	// the same (seat, showtime) the primary key on tickets lets at
	// most one insert commit; the loser gets ErrConflict.
	Book(ctx context.Context, ticket *entity.Ticket) error
	FindByCustomer(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]*entity.Ticket, error)
	// DeleteOwned removes the ticket at (seat, showtime) only when it
	// belongs to customerID. A ticket owned by someone else reports
	// ErrNotFound, same as no ticket at all.
	DeleteOwned(ctx context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time, customerID uuid.UUID) error
	// FindBookedSeats returns the (row, seat) positions that hold a
	// ticket for the given showtime.
	FindBookedSeats(ctx context.Context, playID uuid.UUID, dateAndTime time.Time) ([]entity.Seat, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Book(ctx context.Context, ticket *entity.Ticket) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool

	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM seats WHERE row_no = $1 AND seat_no = $2)`,
		ticket.RowNo, ticket.SeatNo,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check seat %d/%d: %w", ticket.RowNo, ticket.SeatNo, err)
	}
	if !exists {
		return fmt.Errorf("seat row %d seat %d does not exist: %w", ticket.RowNo, ticket.SeatNo, ErrNotFound)
	}

	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM showtimes WHERE play_id = $1 AND date_and_time = $2)`,
		ticket.PlayID, ticket.DateAndTime,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check showtime for play %s: %w", ticket.PlayID.String(), err)
	}
	if !exists {
		return fmt.Errorf("showtime does not exist: %w", ErrNotFound)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO tickets (row_no, seat_no, play_id, date_and_time, customer_id, ticket_no, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ticket.RowNo,
		ticket.SeatNo,
		ticket.PlayID,
		ticket.DateAndTime,
		ticket.CustomerID,
		ticket.TicketNo,
		ticket.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("seat already booked for this showtime: %w", ErrConflict)
		}
		r.log.Error("Failed to insert ticket",
			zap.Error(err),
			zap.Int("row_no", ticket.RowNo),
			zap.Int("seat_no", ticket.SeatNo),
			zap.String("play_id", ticket.PlayID.String()),
		)
		return fmt.Errorf("insert ticket for seat %d/%d: %w", ticket.RowNo, ticket.SeatNo, err)
	}

	if err := tx.Commit(ctx); err != nil {
		// A racing insert may surface the constraint violation at
		// commit time; it is still a Conflict to the caller.
		if isUniqueViolation(err) {
			return fmt.Errorf("seat already booked for this showtime: %w", ErrConflict)
		}
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

func (r *ticketRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]*entity.Ticket, error) {
	query := `
		SELECT row_no, seat_no, play_id, date_and_time, customer_id, ticket_no, created_at
		FROM tickets
		WHERE customer_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, customerID, skip, limit)
	if err != nil {
		r.log.Error("Failed to find tickets by customer",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find tickets by customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.RowNo,
			&ticket.SeatNo,
			&ticket.PlayID,
			&ticket.DateAndTime,
			&ticket.CustomerID,
			&ticket.TicketNo,
			&ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

func (r *ticketRepository) DeleteOwned(ctx context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time, customerID uuid.UUID) error {
	query := `
		DELETE FROM tickets
		WHERE row_no = $1 AND seat_no = $2 AND play_id = $3 AND date_and_time = $4 AND customer_id = $5
	`

	result, err := r.db.Exec(ctx, query, rowNo, seatNo, playID, dateAndTime, customerID)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.Int("row_no", rowNo),
			zap.Int("seat_no", seatNo),
			zap.String("customer_id", customerID.String()),
		)
		return fmt.Errorf("delete ticket for seat %d/%d: %w", rowNo, seatNo, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket for seat %d/%d: %w", rowNo, seatNo, ErrNotFound)
	}

	r.log.Info("Ticket deleted",
		zap.Int("row_no", rowNo),
		zap.Int("seat_no", seatNo),
		zap.String("customer_id", customerID.String()))
	return nil
}

func (r *ticketRepository) FindBookedSeats(ctx context.Context, playID uuid.UUID, dateAndTime time.Time) ([]entity.Seat, error) {
	query := `
		SELECT row_no, seat_no
		FROM tickets
		WHERE play_id = $1 AND date_and_time = $2
	`

	rows, err := r.db.Query(ctx, query, playID, dateAndTime)
	if err != nil {
		r.log.Error("Failed to find booked seats",
			zap.Error(err),
			zap.String("play_id", playID.String()),
			zap.Time("date_and_time", dateAndTime),
		)
		return nil, fmt.Errorf("find booked seats: %w", err)
	}
	defer rows.Close()

	var booked []entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(&seat.RowNo, &seat.SeatNo); err != nil {
			r.log.Error("Failed to scan booked seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booked seat row: %w", err)
		}
		booked = append(booked, seat)
	}

	return booked, nil
}
