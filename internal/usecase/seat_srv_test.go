package usecase_test

import (
	"context"
	"errors"
	"fmt"
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

func newSeatService(seats *fakeSeatRepo) usecase.SeatService {
	repo := &repository.Repository{Seat: seats}
	return usecase.NewSeatService(repo, zap.NewNop())
}

func TestCreateSeat_New(t *testing.T) {
	service := newSeatService(newFakeSeatRepo())

	seat, err := service.Create(context.Background(), &request.SeatRequest{RowNo: 3, SeatNo: 7})

	require.NoError(t, err)
	assert.Equal(t, 3, seat.RowNo)
	assert.Equal(t, 7, seat.SeatNo)
}

func TestCreateSeat_IdempotentOnRepost(t *testing.T) {
	service := newSeatService(newFakeSeatRepo())
	ctx := context.Background()
	req := &request.SeatRequest{RowNo: 3, SeatNo: 7}

	first, err := service.Create(ctx, req)
	require.NoError(t, err)

	second, err := service.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCreateSeat_RacingInsertStillSucceeds(t *testing.T) {
	seats := newFakeSeatRepo()
	service := newSeatService(seats)
	ctx := context.Background()

	// Simulate another request winning the insert between the
	// existence check and the create.
	seats.createErr = fmt.Errorf("seat row 3 seat 7 already exists: %w", repository.ErrConflict)

	seat, err := service.Create(ctx, &request.SeatRequest{RowNo: 3, SeatNo: 7})

	require.NoError(t, err)
	assert.Equal(t, 3, seat.RowNo)
	assert.Equal(t, 7, seat.SeatNo)
}

func TestCreateSeat_RejectsNonPositive(t *testing.T) {
	service := newSeatService(newFakeSeatRepo())

	_, err := service.Create(context.Background(), &request.SeatRequest{RowNo: 0, SeatNo: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateSeat_MovesPosition(t *testing.T) {
	seats := newFakeSeatRepo()
	service := newSeatService(seats)
	ctx := context.Background()

	require.NoError(t, seats.Create(ctx, &entity.Seat{RowNo: 1, SeatNo: 1}))

	seat, err := service.Update(ctx, 1, 1, &request.SeatRequest{RowNo: 2, SeatNo: 5})

	require.NoError(t, err)
	assert.Equal(t, 2, seat.RowNo)
	assert.Equal(t, 5, seat.SeatNo)

	moved, err := seats.Find(ctx, 2, 5)
	require.NoError(t, err)
	assert.NotNil(t, moved)
}

func TestUpdateSeat_TargetOccupied(t *testing.T) {
	seats := newFakeSeatRepo()
	service := newSeatService(seats)
	ctx := context.Background()

	require.NoError(t, seats.Create(ctx, &entity.Seat{RowNo: 1, SeatNo: 1}))
	require.NoError(t, seats.Create(ctx, &entity.Seat{RowNo: 2, SeatNo: 5}))

	_, err := service.Update(ctx, 1, 1, &request.SeatRequest{RowNo: 2, SeatNo: 5})

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrConflict))
}

func TestUpdateSeat_Missing(t *testing.T) {
	service := newSeatService(newFakeSeatRepo())

	_, err := service.Update(context.Background(), 9, 9, &request.SeatRequest{RowNo: 1, SeatNo: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDeleteAllSeats_ReportsCount(t *testing.T) {
	seats := newFakeSeatRepo()
	service := newSeatService(seats)
	ctx := context.Background()

	for seatNo := 1; seatNo <= 4; seatNo++ {
		require.NoError(t, seats.Create(ctx, &entity.Seat{RowNo: 1, SeatNo: seatNo}))
	}

	result, err := service.DeleteAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.DeletedCount)

	remaining, err := service.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteAllSeats_EmptyMap(t *testing.T) {
	service := newSeatService(newFakeSeatRepo())

	result, err := service.DeleteAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
}

// seatCascadeFixture wires the seat fake to prices and tickets so a
// seat delete fans out the way the store foreign keys do.
type seatCascadeFixture struct {
	service usecase.SeatService
	seats   *fakeSeatRepo
	prices  *fakePriceRepo
	tickets *fakeTicketRepo

	playID uuid.UUID
	at     time.Time
}

func newSeatCascadeFixture(t *testing.T) *seatCascadeFixture {
	t.Helper()

	seats := newFakeSeatRepo()
	shows := newFakeShowTimeRepo()
	prices := newFakePriceRepo(seats, shows)
	tickets := newFakeTicketRepo(seats, shows)
	seats.prices = prices
	seats.tickets = tickets

	ctx := context.Background()
	playID := uuid.New()
	at := time.Date(2026, 6, 20, 20, 0, 0, 0, time.UTC)

	require.NoError(t, seats.Create(ctx, &entity.Seat{RowNo: 1, SeatNo: 1}))
	require.NoError(t, seats.Create(ctx, &entity.Seat{RowNo: 1, SeatNo: 2}))
	require.NoError(t, shows.Create(ctx, &entity.ShowTime{PlayID: playID, DateAndTime: at}))
	require.NoError(t, prices.Create(ctx, &entity.ShowTimePrice{
		RowNo: 1, SeatNo: 1, PlayID: playID, DateAndTime: at, Price: 120,
	}))
	require.NoError(t, tickets.Book(ctx, &entity.Ticket{
		RowNo: 1, SeatNo: 1, PlayID: playID, DateAndTime: at,
		CustomerID: uuid.New(), TicketNo: "TKT0000002", CreatedAt: time.Now(),
	}))

	return &seatCascadeFixture{
		service: newSeatService(seats),
		seats:   seats,
		prices:  prices,
		tickets: tickets,
		playID:  playID,
		at:      at,
	}
}

func TestDeleteSeat_DropsDependentRows(t *testing.T) {
	f := newSeatCascadeFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.Delete(ctx, 1, 1))

	price, err := f.prices.Find(ctx, 1, 1, f.playID, f.at)
	require.NoError(t, err)
	assert.Nil(t, price)

	booked, err := f.tickets.FindBookedSeats(ctx, f.playID, f.at)
	require.NoError(t, err)
	assert.Empty(t, booked)

	// The untouched seat remains.
	seat, err := f.seats.Find(ctx, 1, 2)
	require.NoError(t, err)
	assert.NotNil(t, seat)
}

func TestDeleteAllSeats_DropsDependentRows(t *testing.T) {
	f := newSeatCascadeFixture(t)
	ctx := context.Background()

	result, err := f.service.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.DeletedCount)

	price, err := f.prices.Find(ctx, 1, 1, f.playID, f.at)
	require.NoError(t, err)
	assert.Nil(t, price)

	booked, err := f.tickets.FindBookedSeats(ctx, f.playID, f.at)
	require.NoError(t, err)
	assert.Empty(t, booked)
}
