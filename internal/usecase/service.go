package usecase

import (
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Customer CustomerService
	Play     PlayService
	Actor    ActorService
	Director DirectorService
	Seat     SeatService
	ShowTime ShowTimeService
	Pricing  PricingService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Customer: NewCustomerService(repo, log),
		Play:     NewPlayService(repo, log),
		Actor:    NewActorService(repo, log),
		Director: NewDirectorService(repo, log),
		Seat:     NewSeatService(repo, log),
		ShowTime: NewShowTimeService(repo, log),
		Pricing:  NewPricingService(repo, log),
		Booking:  NewBookingService(repo, log),
	}
}
