package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Any authenticated customer; ownership is enforced per ticket.
	r.Route("/tickets", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		r.Post("/", ticketHandler.Create)
		r.Get("/", ticketHandler.List)
		r.Delete("/", ticketHandler.Delete)
	})
}
