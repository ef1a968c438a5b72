package wire

import (
	"net/http"

	"theater-booking/internal/adaptor"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireCustomer(r, handler.Customer, config, logger)
	wireCatalog(r, handler.Play, handler.Actor, handler.Director, config, logger)
	wireSeat(r, handler.Seat, config, logger)
	wireShowTime(r, handler.ShowTime, handler.Price, handler.Ticket, config, logger)
	wireTicket(r, handler.Ticket, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
