package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateTicket books a seat for a showtime on behalf of the
	// authenticated customer. The seat stays available until the insert
	// commits; a concurrent booking for the same seat loses with a
	// conflict.
	CreateTicket(ctx context.Context, customerID uuid.UUID, req *request.CreateTicketRequest) (*response.TicketResponse, error)
	// ListTickets returns the customer's own tickets, newest first.
	ListTickets(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]response.TicketResponse, error)
	// DeleteTicket cancels the customer's own booking. A ticket owned
	// by another customer looks like a missing ticket.
	DeleteTicket(ctx context.Context, customerID uuid.UUID, req *request.DeleteTicketRequest) error
	// Availability reports every seat for a showtime with its booked
	// flag, computed fresh from the current ticket rows.
	Availability(ctx context.Context, playID string, dateAndTime time.Time) ([]response.SeatAvailabilityResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateTicket(ctx context.Context, customerID uuid.UUID, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	ticket := &entity.Ticket{
		RowNo:       req.RowNo,
		SeatNo:      req.SeatNo,
		PlayID:      playID,
		DateAndTime: req.DateAndTime,
		CustomerID:  customerID,
		TicketNo:    utils.GenerateTicketNo(),
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Ticket.Book(ctx, ticket); err != nil {
		return nil, fmt.Errorf("book ticket: %w", err)
	}

	s.log.Info("Ticket booked",
		zap.String("ticket_no", ticket.TicketNo),
		zap.Int("row_no", ticket.RowNo),
		zap.Int("seat_no", ticket.SeatNo),
		zap.String("play_id", req.PlayID),
		zap.String("customer_id", customerID.String()))

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *bookingService) ListTickets(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]response.TicketResponse, error) {
	skip, limit = utils.NormalizeSkipLimit(skip, limit)

	tickets, err := s.repo.Ticket.FindByCustomer(ctx, customerID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	return response.TicketsToResponse(tickets), nil
}

func (s *bookingService) DeleteTicket(ctx context.Context, customerID uuid.UUID, req *request.DeleteTicketRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Delete ticket validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return fmt.Errorf("invalid play ID %s: %w", req.PlayID, err)
	}

	if err := s.repo.Ticket.DeleteOwned(ctx, req.RowNo, req.SeatNo, playID, req.DateAndTime, customerID); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	return nil
}

func (s *bookingService) Availability(ctx context.Context, playID string, dateAndTime time.Time) ([]response.SeatAvailabilityResponse, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID %s: %w", playID, err)
	}

	showtime, err := s.repo.ShowTime.Find(ctx, id, dateAndTime)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime for play %s at %s: %w",
			playID, dateAndTime.Format(time.RFC3339), repository.ErrNotFound)
	}

	seats, err := s.repo.Seat.FindEvery(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}

	booked, err := s.repo.Ticket.FindBookedSeats(ctx, id, dateAndTime)
	if err != nil {
		return nil, fmt.Errorf("find booked seats: %w", err)
	}

	bookedSet := make(map[[2]int]struct{}, len(booked))
	for _, seat := range booked {
		bookedSet[[2]int{seat.RowNo, seat.SeatNo}] = struct{}{}
	}

	availability := make([]entity.SeatAvailability, len(seats))
	for i, seat := range seats {
		_, isBooked := bookedSet[[2]int{seat.RowNo, seat.SeatNo}]
		availability[i] = entity.SeatAvailability{
			RowNo:    seat.RowNo,
			SeatNo:   seat.SeatNo,
			IsBooked: isBooked,
		}
	}

	return response.AvailabilityToResponse(availability), nil
}
