package response

import (
	"time"

	"theater-booking/internal/data/entity"
)

type TicketResponse struct {
	RowNo       int       `json:"row_no"`
	SeatNo      int       `json:"seat_no"`
	PlayID      string    `json:"play_id"`
	DateAndTime time.Time `json:"date_and_time"`
	TicketNo    string    `json:"ticket_no"`
	CreatedAt   time.Time `json:"created_at"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		RowNo:       ticket.RowNo,
		SeatNo:      ticket.SeatNo,
		PlayID:      ticket.PlayID.String(),
		DateAndTime: ticket.DateAndTime,
		TicketNo:    ticket.TicketNo,
		CreatedAt:   ticket.CreatedAt,
	}
}

func TicketsToResponse(tickets []*entity.Ticket) []TicketResponse {
	out := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		out[i] = TicketToResponse(ticket)
	}
	return out
}
