package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /register - Create a customer account
	r.Post("/register", authHandler.Register)

	// POST /token - Exchange credentials for an access token
	r.Post("/token", authHandler.Login)
}
