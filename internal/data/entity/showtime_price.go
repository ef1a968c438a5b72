package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShowTimePrice holds the price of one seat at one showtime. At most
// one row may exist per (seat, showtime).
type ShowTimePrice struct {
	RowNo       int       `db:"row_no"`
	SeatNo      int       `db:"seat_no"`
	PlayID      uuid.UUID `db:"play_id"`
	DateAndTime time.Time `db:"date_and_time"`
	Price       float64   `db:"price"`
}
