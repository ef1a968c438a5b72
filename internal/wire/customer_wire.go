package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Account management is admin only; self-service goes through
	// /register and /token.
	r.Route("/customers", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Get("/", customerHandler.List)
		r.Get("/{id}", customerHandler.GetByID)
		r.Put("/{id}", customerHandler.Update)
		r.Delete("/{id}", customerHandler.Delete)
	})
}
