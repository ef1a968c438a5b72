package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. They mirror the store
// semantics the real repositories get from Postgres: unique keys
// report ErrConflict, missing rows report ErrNotFound, and seat and
// play deletion cascade into dependent showtimes, prices and tickets
// when the fakes are wired together.

type seatKey struct {
	rowNo  int
	seatNo int
}

type showKey struct {
	playID uuid.UUID
	at     string
}

type ticketKey struct {
	rowNo  int
	seatNo int
	playID uuid.UUID
	at     string
}

func showKeyOf(playID uuid.UUID, at time.Time) showKey {
	return showKey{playID: playID, at: at.UTC().Format(time.RFC3339Nano)}
}

func ticketKeyOf(rowNo, seatNo int, playID uuid.UUID, at time.Time) ticketKey {
	return ticketKey{rowNo: rowNo, seatNo: seatNo, playID: playID, at: at.UTC().Format(time.RFC3339Nano)}
}

// ---------- customers ----------

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.customers {
		if existing.Email == customer.Email {
			return fmt.Errorf("email %s already registered: %w", customer.Email, repository.ErrConflict)
		}
	}
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	customer, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *customer
	return &clone, nil
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, customer := range f.customers {
		if customer.Email == email {
			clone := *customer
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindAll(_ context.Context, skip, limit int) ([]*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Customer
	for _, customer := range f.customers {
		clone := *customer
		out = append(out, &clone)
	}
	return paginate(out, skip, limit), nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.customers[customer.ID]; !ok {
		return fmt.Errorf("customer %s: %w", customer.ID, repository.ErrNotFound)
	}
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.customers[id]; !ok {
		return fmt.Errorf("customer %s: %w", id, repository.ErrNotFound)
	}
	delete(f.customers, id)
	return nil
}

// ---------- plays ----------

type fakePlayRepo struct {
	mu    sync.Mutex
	plays map[uuid.UUID]*entity.Play

	// cascade targets, wired per test when the play-delete fan-out
	// matters
	shows   *fakeShowTimeRepo
	prices  *fakePriceRepo
	tickets *fakeTicketRepo
}

func newFakePlayRepo() *fakePlayRepo {
	return &fakePlayRepo{plays: make(map[uuid.UUID]*entity.Play)}
}

func (f *fakePlayRepo) Create(_ context.Context, play *entity.Play) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *play
	f.plays[play.ID] = &clone
	return nil
}

func (f *fakePlayRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Play, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	play, ok := f.plays[id]
	if !ok {
		return nil, nil
	}
	clone := *play
	return &clone, nil
}

func (f *fakePlayRepo) FindAll(_ context.Context, skip, limit int) ([]*entity.Play, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Play
	for _, play := range f.plays {
		clone := *play
		out = append(out, &clone)
	}
	return paginate(out, skip, limit), nil
}

func (f *fakePlayRepo) Update(_ context.Context, play *entity.Play) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.plays[play.ID]; !ok {
		return fmt.Errorf("play %s: %w", play.ID, repository.ErrNotFound)
	}
	clone := *play
	f.plays[play.ID] = &clone
	return nil
}

func (f *fakePlayRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	if _, ok := f.plays[id]; !ok {
		f.mu.Unlock()
		return fmt.Errorf("play %s: %w", id, repository.ErrNotFound)
	}
	delete(f.plays, id)
	f.mu.Unlock()

	if f.shows != nil {
		f.shows.deleteByPlay(id)
	}
	if f.prices != nil {
		f.prices.deleteByPlay(id)
	}
	if f.tickets != nil {
		f.tickets.deleteByPlay(id)
	}
	return nil
}

// ---------- actors ----------

type fakeActorRepo struct {
	mu     sync.Mutex
	actors map[uuid.UUID]*entity.Actor
	linked map[uuid.UUID][]*entity.Play
}

func newFakeActorRepo() *fakeActorRepo {
	return &fakeActorRepo{
		actors: make(map[uuid.UUID]*entity.Actor),
		linked: make(map[uuid.UUID][]*entity.Play),
	}
}

func (f *fakeActorRepo) Create(_ context.Context, actor *entity.Actor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *actor
	f.actors[actor.ID] = &clone
	return nil
}

func (f *fakeActorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Actor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	actor, ok := f.actors[id]
	if !ok {
		return nil, nil
	}
	clone := *actor
	return &clone, nil
}

func (f *fakeActorRepo) FindAll(_ context.Context, skip, limit int) ([]*entity.Actor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Actor
	for _, actor := range f.actors {
		clone := *actor
		out = append(out, &clone)
	}
	return paginate(out, skip, limit), nil
}

func (f *fakeActorRepo) Update(_ context.Context, actor *entity.Actor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.actors[actor.ID]; !ok {
		return fmt.Errorf("actor %s: %w", actor.ID, repository.ErrNotFound)
	}
	clone := *actor
	f.actors[actor.ID] = &clone
	return nil
}

func (f *fakeActorRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if plays := f.linked[id]; len(plays) > 0 {
		titles := make([]string, len(plays))
		for i, play := range plays {
			titles[i] = play.Title
		}
		return fmt.Errorf("actor is associated with plays: %s: %w",
			strings.Join(titles, ", "), repository.ErrRelationshipConflict)
	}
	if _, ok := f.actors[id]; !ok {
		return fmt.Errorf("actor %s: %w", id, repository.ErrNotFound)
	}
	delete(f.actors, id)
	return nil
}

func (f *fakeActorRepo) FindPlays(_ context.Context, actorID uuid.UUID) ([]*entity.Play, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Play(nil), f.linked[actorID]...), nil
}

func (f *fakeActorRepo) LinkPlay(_ context.Context, actorID, playID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, play := range f.linked[actorID] {
		if play.ID == playID {
			return fmt.Errorf("actor already linked to play: %w", repository.ErrConflict)
		}
	}
	f.linked[actorID] = append(f.linked[actorID], &entity.Play{
		Base: entity.Base{ID: playID},
	})
	return nil
}

func (f *fakeActorRepo) UnlinkPlay(_ context.Context, actorID, playID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	plays := f.linked[actorID]
	for i, play := range plays {
		if play.ID == playID {
			f.linked[actorID] = append(plays[:i], plays[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("actor-play link: %w", repository.ErrNotFound)
}

// link attaches a play with a title, for the delete guard tests.
func (f *fakeActorRepo) link(actorID uuid.UUID, play *entity.Play) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.linked[actorID] = append(f.linked[actorID], play)
}

// ---------- seats ----------

type fakeSeatRepo struct {
	mu    sync.Mutex
	seats map[seatKey]*entity.Seat

	// createErr, when set, is returned by the next Create call to
	// simulate a racing insert.
	createErr error

	// cascade targets, wired per test when the seat-delete fan-out
	// matters
	prices  *fakePriceRepo
	tickets *fakeTicketRepo
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{seats: make(map[seatKey]*entity.Seat)}
}

func (f *fakeSeatRepo) Create(_ context.Context, seat *entity.Seat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	key := seatKey{seat.RowNo, seat.SeatNo}
	if _, ok := f.seats[key]; ok {
		return fmt.Errorf("seat row %d seat %d already exists: %w", seat.RowNo, seat.SeatNo, repository.ErrConflict)
	}
	clone := *seat
	f.seats[key] = &clone
	return nil
}

func (f *fakeSeatRepo) Find(_ context.Context, rowNo, seatNo int) (*entity.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seat, ok := f.seats[seatKey{rowNo, seatNo}]
	if !ok {
		return nil, nil
	}
	clone := *seat
	return &clone, nil
}

func (f *fakeSeatRepo) FindAll(_ context.Context, skip, limit int) ([]*entity.Seat, error) {
	all, err := f.FindEvery(context.Background())
	if err != nil {
		return nil, err
	}
	return paginate(all, skip, limit), nil
}

func (f *fakeSeatRepo) FindEvery(_ context.Context) ([]*entity.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Seat
	for _, seat := range f.seats {
		clone := *seat
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeSeatRepo) UpdateKey(_ context.Context, rowNo, seatNo, newRowNo, newSeatNo int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := seatKey{rowNo, seatNo}
	if _, ok := f.seats[key]; !ok {
		return fmt.Errorf("seat %d/%d: %w", rowNo, seatNo, repository.ErrNotFound)
	}
	newKey := seatKey{newRowNo, newSeatNo}
	if _, ok := f.seats[newKey]; ok && newKey != key {
		return fmt.Errorf("seat already exists at row %d seat %d: %w", newRowNo, newSeatNo, repository.ErrConflict)
	}
	delete(f.seats, key)
	f.seats[newKey] = &entity.Seat{RowNo: newRowNo, SeatNo: newSeatNo}
	return nil
}

func (f *fakeSeatRepo) Delete(_ context.Context, rowNo, seatNo int) error {
	f.mu.Lock()
	key := seatKey{rowNo, seatNo}
	if _, ok := f.seats[key]; !ok {
		f.mu.Unlock()
		return fmt.Errorf("seat %d/%d: %w", rowNo, seatNo, repository.ErrNotFound)
	}
	delete(f.seats, key)
	f.mu.Unlock()

	if f.prices != nil {
		f.prices.deleteBySeat(rowNo, seatNo)
	}
	if f.tickets != nil {
		f.tickets.deleteBySeat(rowNo, seatNo)
	}
	return nil
}

func (f *fakeSeatRepo) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	count := int64(len(f.seats))
	f.seats = make(map[seatKey]*entity.Seat)
	f.mu.Unlock()

	if f.prices != nil {
		f.prices.clear()
	}
	if f.tickets != nil {
		f.tickets.clear()
	}
	return count, nil
}

// ---------- showtimes ----------

type fakeShowTimeRepo struct {
	mu    sync.Mutex
	shows map[showKey]*entity.ShowTime
}

func newFakeShowTimeRepo() *fakeShowTimeRepo {
	return &fakeShowTimeRepo{shows: make(map[showKey]*entity.ShowTime)}
}

func (f *fakeShowTimeRepo) Create(_ context.Context, showtime *entity.ShowTime) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := showKeyOf(showtime.PlayID, showtime.DateAndTime)
	if _, ok := f.shows[key]; ok {
		return fmt.Errorf("showtime already exists for this play at %s: %w",
			showtime.DateAndTime.Format(time.RFC3339), repository.ErrConflict)
	}
	clone := *showtime
	f.shows[key] = &clone
	return nil
}

func (f *fakeShowTimeRepo) Find(_ context.Context, playID uuid.UUID, dateAndTime time.Time) (*entity.ShowTime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	showtime, ok := f.shows[showKeyOf(playID, dateAndTime)]
	if !ok {
		return nil, nil
	}
	clone := *showtime
	return &clone, nil
}

func (f *fakeShowTimeRepo) FindAll(_ context.Context, skip, limit int) ([]*entity.ShowTime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ShowTime
	for _, showtime := range f.shows {
		clone := *showtime
		out = append(out, &clone)
	}
	return paginate(out, skip, limit), nil
}

func (f *fakeShowTimeRepo) FindForPlay(_ context.Context, playID uuid.UUID, skip, limit int) ([]*entity.ShowTime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ShowTime
	for _, showtime := range f.shows {
		if showtime.PlayID == playID {
			clone := *showtime
			out = append(out, &clone)
		}
	}
	return paginate(out, skip, limit), nil
}

func (f *fakeShowTimeRepo) UpdateSlot(_ context.Context, playID uuid.UUID, origDateAndTime, newDateAndTime time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	origKey := showKeyOf(playID, origDateAndTime)
	showtime, ok := f.shows[origKey]
	if !ok {
		return fmt.Errorf("showtime for play %s at %s: %w",
			playID, origDateAndTime.Format(time.RFC3339), repository.ErrNotFound)
	}
	newKey := showKeyOf(playID, newDateAndTime)
	if _, ok := f.shows[newKey]; ok {
		return fmt.Errorf("showtime already exists for this play at %s: %w",
			newDateAndTime.Format(time.RFC3339), repository.ErrConflict)
	}
	delete(f.shows, origKey)
	showtime.DateAndTime = newDateAndTime
	f.shows[newKey] = showtime
	return nil
}

func (f *fakeShowTimeRepo) deleteByPlay(playID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.shows {
		if key.playID == playID {
			delete(f.shows, key)
		}
	}
}

func (f *fakeShowTimeRepo) Delete(_ context.Context, playID uuid.UUID, dateAndTime time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := showKeyOf(playID, dateAndTime)
	if _, ok := f.shows[key]; !ok {
		return fmt.Errorf("showtime for play %s at %s: %w",
			playID, dateAndTime.Format(time.RFC3339), repository.ErrNotFound)
	}
	delete(f.shows, key)
	return nil
}

// ---------- prices ----------

type fakePriceRepo struct {
	mu     sync.Mutex
	prices map[ticketKey]*entity.ShowTimePrice
	seats  *fakeSeatRepo
	shows  *fakeShowTimeRepo
}

func newFakePriceRepo(seats *fakeSeatRepo, shows *fakeShowTimeRepo) *fakePriceRepo {
	return &fakePriceRepo{
		prices: make(map[ticketKey]*entity.ShowTimePrice),
		seats:  seats,
		shows:  shows,
	}
}

func (f *fakePriceRepo) Create(ctx context.Context, price *entity.ShowTimePrice) error {
	seat, _ := f.seats.Find(ctx, price.RowNo, price.SeatNo)
	showtime, _ := f.shows.Find(ctx, price.PlayID, price.DateAndTime)
	if seat == nil || showtime == nil {
		return fmt.Errorf("seat or showtime: %w", repository.ErrNotFound)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	key := ticketKeyOf(price.RowNo, price.SeatNo, price.PlayID, price.DateAndTime)
	if _, ok := f.prices[key]; ok {
		return fmt.Errorf("price for this seat at this showtime already exists: %w", repository.ErrConflict)
	}
	clone := *price
	f.prices[key] = &clone
	return nil
}

func (f *fakePriceRepo) Find(_ context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time) (*entity.ShowTimePrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	price, ok := f.prices[ticketKeyOf(rowNo, seatNo, playID, dateAndTime)]
	if !ok {
		return nil, nil
	}
	clone := *price
	return &clone, nil
}

func (f *fakePriceRepo) FindForShowtime(_ context.Context, playID uuid.UUID, dateAndTime time.Time, skip, limit int) ([]*entity.ShowTimePrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := showKeyOf(playID, dateAndTime)
	var out []*entity.ShowTimePrice
	for _, price := range f.prices {
		if showKeyOf(price.PlayID, price.DateAndTime) == key {
			clone := *price
			out = append(out, &clone)
		}
	}
	return paginate(out, skip, limit), nil
}

func (f *fakePriceRepo) UpdatePrice(_ context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	price, ok := f.prices[ticketKeyOf(rowNo, seatNo, playID, dateAndTime)]
	if !ok {
		return fmt.Errorf("price for seat %d/%d: %w", rowNo, seatNo, repository.ErrNotFound)
	}
	price.Price = amount
	return nil
}

func (f *fakePriceRepo) Delete(_ context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := ticketKeyOf(rowNo, seatNo, playID, dateAndTime)
	if _, ok := f.prices[key]; !ok {
		return fmt.Errorf("price for seat %d/%d: %w", rowNo, seatNo, repository.ErrNotFound)
	}
	delete(f.prices, key)
	return nil
}

func (f *fakePriceRepo) deleteBySeat(rowNo, seatNo int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.prices {
		if key.rowNo == rowNo && key.seatNo == seatNo {
			delete(f.prices, key)
		}
	}
}

func (f *fakePriceRepo) deleteByPlay(playID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.prices {
		if key.playID == playID {
			delete(f.prices, key)
		}
	}
}

func (f *fakePriceRepo) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prices = make(map[ticketKey]*entity.ShowTimePrice)
}

// ---------- tickets ----------

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets map[ticketKey]*entity.Ticket
	seats   *fakeSeatRepo
	shows   *fakeShowTimeRepo
}

func newFakeTicketRepo(seats *fakeSeatRepo, shows *fakeShowTimeRepo) *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets: make(map[ticketKey]*entity.Ticket),
		seats:   seats,
		shows:   shows,
	}
}

func (f *fakeTicketRepo) Book(ctx context.Context, ticket *entity.Ticket) error {
	seat, _ := f.seats.Find(ctx, ticket.RowNo, ticket.SeatNo)
	if seat == nil {
		return fmt.Errorf("seat row %d seat %d does not exist: %w", ticket.RowNo, ticket.SeatNo, repository.ErrNotFound)
	}
	showtime, _ := f.shows.Find(ctx, ticket.PlayID, ticket.DateAndTime)
	if showtime == nil {
		return fmt.Errorf("showtime does not exist: %w", repository.ErrNotFound)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	key := ticketKeyOf(ticket.RowNo, ticket.SeatNo, ticket.PlayID, ticket.DateAndTime)
	if _, ok := f.tickets[key]; ok {
		return fmt.Errorf("seat already booked for this showtime: %w", repository.ErrConflict)
	}
	clone := *ticket
	f.tickets[key] = &clone
	return nil
}

func (f *fakeTicketRepo) FindByCustomer(_ context.Context, customerID uuid.UUID, skip, limit int) ([]*entity.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Ticket
	for _, ticket := range f.tickets {
		if ticket.CustomerID == customerID {
			clone := *ticket
			out = append(out, &clone)
		}
	}
	return paginate(out, skip, limit), nil
}

func (f *fakeTicketRepo) DeleteOwned(_ context.Context, rowNo, seatNo int, playID uuid.UUID, dateAndTime time.Time, customerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := ticketKeyOf(rowNo, seatNo, playID, dateAndTime)
	ticket, ok := f.tickets[key]
	if !ok || ticket.CustomerID != customerID {
		return fmt.Errorf("ticket for seat %d/%d: %w", rowNo, seatNo, repository.ErrNotFound)
	}
	delete(f.tickets, key)
	return nil
}

func (f *fakeTicketRepo) FindBookedSeats(_ context.Context, playID uuid.UUID, dateAndTime time.Time) ([]entity.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := showKeyOf(playID, dateAndTime)
	var out []entity.Seat
	for _, ticket := range f.tickets {
		if showKeyOf(ticket.PlayID, ticket.DateAndTime) == key {
			out = append(out, entity.Seat{RowNo: ticket.RowNo, SeatNo: ticket.SeatNo})
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) deleteBySeat(rowNo, seatNo int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.tickets {
		if key.rowNo == rowNo && key.seatNo == seatNo {
			delete(f.tickets, key)
		}
	}
}

func (f *fakeTicketRepo) deleteByPlay(playID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.tickets {
		if key.playID == playID {
			delete(f.tickets, key)
		}
	}
}

func (f *fakeTicketRepo) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tickets = make(map[ticketKey]*entity.Ticket)
}

// ---------- shared ----------

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return nil
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
