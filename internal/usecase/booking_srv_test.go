package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	repo    *repository.Repository
	seats   *fakeSeatRepo
	shows   *fakeShowTimeRepo
	tickets *fakeTicketRepo
	service usecase.BookingService

	playID   uuid.UUID
	showtime time.Time
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	seats := newFakeSeatRepo()
	shows := newFakeShowTimeRepo()
	tickets := newFakeTicketRepo(seats, shows)

	repo := &repository.Repository{
		Seat:     seats,
		ShowTime: shows,
		Ticket:   tickets,
	}

	ctx := context.Background()
	playID := uuid.New()
	showtime := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

	require.NoError(t, seats.Create(ctx, &entity.Seat{RowNo: 1, SeatNo: 1}))
	require.NoError(t, seats.Create(ctx, &entity.Seat{RowNo: 1, SeatNo: 2}))
	require.NoError(t, shows.Create(ctx, &entity.ShowTime{PlayID: playID, DateAndTime: showtime}))

	return &bookingFixture{
		repo:     repo,
		seats:    seats,
		shows:    shows,
		tickets:  tickets,
		service:  usecase.NewBookingService(repo, zap.NewNop()),
		playID:   playID,
		showtime: showtime,
	}
}

func (f *bookingFixture) ticketRequest(rowNo, seatNo int) *request.CreateTicketRequest {
	return &request.CreateTicketRequest{
		RowNo:       rowNo,
		SeatNo:      seatNo,
		PlayID:      f.playID.String(),
		DateAndTime: f.showtime,
	}
}

func TestCreateTicket_Success(t *testing.T) {
	f := newBookingFixture(t)
	customerID := uuid.New()

	ticket, err := f.service.CreateTicket(context.Background(), customerID, f.ticketRequest(1, 1))

	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, 1, ticket.RowNo)
	assert.Equal(t, 1, ticket.SeatNo)
	assert.Equal(t, f.playID.String(), ticket.PlayID)
	assert.Len(t, ticket.TicketNo, 10)
}

func TestCreateTicket_SeatAlreadyBooked(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateTicket(ctx, uuid.New(), f.ticketRequest(1, 1))
	require.NoError(t, err)

	// A second customer cannot take the same seat for the same showtime.
	_, err = f.service.CreateTicket(ctx, uuid.New(), f.ticketRequest(1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrConflict))
}

func TestCreateTicket_ConcurrentSingleWinner(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.service.CreateTicket(ctx, uuid.New(), f.ticketRequest(1, 1))
			errs[i] = err
		}(i)
	}
	wg.Wait()

	var winners, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, repository.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected booking error: %v", err)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, attempts-1, conflicts)

	tickets, err := f.tickets.FindBookedSeats(ctx, f.playID, f.showtime)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestCreateTicket_SameSeatDifferentShowtime(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	laterShowtime := f.showtime.Add(3 * time.Hour)
	require.NoError(t, f.shows.Create(ctx, &entity.ShowTime{PlayID: f.playID, DateAndTime: laterShowtime}))

	_, err := f.service.CreateTicket(ctx, uuid.New(), f.ticketRequest(1, 1))
	require.NoError(t, err)

	req := f.ticketRequest(1, 1)
	req.DateAndTime = laterShowtime
	_, err = f.service.CreateTicket(ctx, uuid.New(), req)
	assert.NoError(t, err)
}

func TestCreateTicket_SeatDoesNotExist(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.CreateTicket(context.Background(), uuid.New(), f.ticketRequest(99, 99))

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestCreateTicket_ShowtimeDoesNotExist(t *testing.T) {
	f := newBookingFixture(t)

	req := f.ticketRequest(1, 1)
	req.DateAndTime = f.showtime.Add(24 * time.Hour)
	_, err := f.service.CreateTicket(context.Background(), uuid.New(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestListTickets_OwnTicketsOnly(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := f.service.CreateTicket(ctx, alice, f.ticketRequest(1, 1))
	require.NoError(t, err)
	_, err = f.service.CreateTicket(ctx, bob, f.ticketRequest(1, 2))
	require.NoError(t, err)

	tickets, err := f.service.ListTickets(ctx, alice, 0, 0)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, 1, tickets[0].SeatNo)
}

func TestDeleteTicket_Owned(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	_, err := f.service.CreateTicket(ctx, customerID, f.ticketRequest(1, 1))
	require.NoError(t, err)

	deleteReq := &request.DeleteTicketRequest{
		RowNo:       1,
		SeatNo:      1,
		PlayID:      f.playID.String(),
		DateAndTime: f.showtime,
	}
	require.NoError(t, f.service.DeleteTicket(ctx, customerID, deleteReq))

	tickets, err := f.service.ListTickets(ctx, customerID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestDeleteTicket_OtherCustomerLooksMissing(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	_, err := f.service.CreateTicket(ctx, owner, f.ticketRequest(1, 1))
	require.NoError(t, err)

	deleteReq := &request.DeleteTicketRequest{
		RowNo:       1,
		SeatNo:      1,
		PlayID:      f.playID.String(),
		DateAndTime: f.showtime,
	}
	err = f.service.DeleteTicket(ctx, intruder, deleteReq)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	// The owner's ticket survives the attempt.
	tickets, err := f.service.ListTickets(ctx, owner, 0, 0)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
}

func TestAvailability_MarksBookedSeats(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateTicket(ctx, uuid.New(), f.ticketRequest(1, 2))
	require.NoError(t, err)

	availability, err := f.service.Availability(ctx, f.playID.String(), f.showtime)
	require.NoError(t, err)
	require.Len(t, availability, 2)

	booked := make(map[int]bool)
	for _, seat := range availability {
		booked[seat.SeatNo] = seat.IsBooked
	}
	assert.False(t, booked[1])
	assert.True(t, booked[2])
}

func TestAvailability_UnknownShowtime(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.Availability(context.Background(), f.playID.String(), f.showtime.Add(time.Hour))

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestAvailability_FreshAfterCancel(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	customerID := uuid.New()

	_, err := f.service.CreateTicket(ctx, customerID, f.ticketRequest(1, 1))
	require.NoError(t, err)

	deleteReq := &request.DeleteTicketRequest{
		RowNo:       1,
		SeatNo:      1,
		PlayID:      f.playID.String(),
		DateAndTime: f.showtime,
	}
	require.NoError(t, f.service.DeleteTicket(ctx, customerID, deleteReq))

	availability, err := f.service.Availability(ctx, f.playID.String(), f.showtime)
	require.NoError(t, err)
	for _, seat := range availability {
		assert.False(t, seat.IsBooked)
	}
}
