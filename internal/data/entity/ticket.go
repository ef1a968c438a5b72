package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is keyed by (row_no, seat_no, play_id, date_and_time): a
// seat holds at most one ticket per showtime across all customers.
// CustomerID records the owner but is deliberately not part of the
// key.
type Ticket struct {
	RowNo       int       `db:"row_no"`
	SeatNo      int       `db:"seat_no"`
	PlayID      uuid.UUID `db:"play_id"`
	DateAndTime time.Time `db:"date_and_time"`
	CustomerID  uuid.UUID `db:"customer_id"`
	TicketNo    string    `db:"ticket_no"`
	CreatedAt   time.Time `db:"created_at"`
}

// SeatAvailability is the booked flag for one seat at one showtime.
type SeatAvailability struct {
	RowNo    int
	SeatNo   int
	IsBooked bool
}
