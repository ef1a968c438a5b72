package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeat(
	r chi.Router,
	seatHandler *adaptor.SeatHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/seats", seatHandler.List)
	r.Get("/seats/{row}/{seat}", seatHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Post("/seats", seatHandler.Create)
		r.Put("/seats/{row}/{seat}", seatHandler.Update)

		r.Delete("/seats/all", seatHandler.DeleteAll)
		r.Delete("/seats", seatHandler.Delete)
	})
}
