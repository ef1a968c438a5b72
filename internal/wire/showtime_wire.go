package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireShowTime mounts showtimes, per-seat prices and the availability
// view for a showtime.
func wireShowTime(
	r chi.Router,
	showTimeHandler *adaptor.ShowTimeHandler,
	priceHandler *adaptor.PriceHandler,
	ticketHandler *adaptor.TicketHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/showtimes", showTimeHandler.List)
	r.Get("/showtimes/{play_id}", showTimeHandler.ListForPlay)
	r.Get("/showtimes/{play_id}/{datetime}/available-seats", ticketHandler.AvailableSeats)
	r.Get("/showtime-prices/{play_id}/{datetime}", priceHandler.ListForShowtime)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Post("/showtimes", showTimeHandler.Create)
		r.Put("/showtimes/update", showTimeHandler.Update)
		r.Delete("/showtimes", showTimeHandler.Delete)

		r.Post("/showtime-prices", priceHandler.Create)
		r.Put("/showtime-prices", priceHandler.Update)
		r.Delete("/showtime-prices", priceHandler.Delete)
	})
}
