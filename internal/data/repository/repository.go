package repository

import (
	"theater-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Customer CustomerRepository
	Play     PlayRepository
	Actor    ActorRepository
	Director DirectorRepository
	Seat     SeatRepository
	ShowTime ShowTimeRepository
	Price    PriceRepository
	Ticket   TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Customer: NewCustomerRepository(db, log),
		Play:     NewPlayRepository(db, log),
		Actor:    NewActorRepository(db, log),
		Director: NewDirectorRepository(db, log),
		Seat:     NewSeatRepository(db, log),
		ShowTime: NewShowTimeRepository(db, log),
		Price:    NewPriceRepository(db, log),
		Ticket:   NewTicketRepository(db, log),
	}
}
