package adaptor

import (
	"theater-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Customer *CustomerHandler
	Play     *PlayHandler
	Actor    *ActorHandler
	Director *DirectorHandler
	Seat     *SeatHandler
	ShowTime *ShowTimeHandler
	Price    *PriceHandler
	Ticket   *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Play:     NewPlayHandler(service.Play, log),
		Actor:    NewActorHandler(service.Actor, log),
		Director: NewDirectorHandler(service.Director, log),
		Seat:     NewSeatHandler(service.Seat, log),
		ShowTime: NewShowTimeHandler(service.ShowTime, log),
		Price:    NewPriceHandler(service.Pricing, log),
		Ticket:   NewTicketHandler(service.Booking, log),
	}
}
