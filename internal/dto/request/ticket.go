package request

import "time"

// CreateTicketRequest identifies the seat and showtime only. The
// owner comes from the authenticated principal and the ticket number
// is generated server side.
type CreateTicketRequest struct {
	RowNo       int       `json:"row_no" validate:"gte=1"`
	SeatNo      int       `json:"seat_no" validate:"gte=1"`
	PlayID      string    `json:"play_id" validate:"required,uuid"`
	DateAndTime time.Time `json:"date_and_time" validate:"required"`
}

type DeleteTicketRequest struct {
	RowNo       int       `json:"row_no" validate:"gte=1"`
	SeatNo      int       `json:"seat_no" validate:"gte=1"`
	PlayID      string    `json:"play_id" validate:"required,uuid"`
	DateAndTime time.Time `json:"date_and_time" validate:"required"`
}
