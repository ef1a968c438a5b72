package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog mounts plays, actors and directors plus the play
// association routes. Reads are public; mutations are admin only.
func wireCatalog(
	r chi.Router,
	playHandler *adaptor.PlayHandler,
	actorHandler *adaptor.ActorHandler,
	directorHandler *adaptor.DirectorHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/plays", playHandler.List)
	r.Get("/plays/{id}", playHandler.GetByID)
	r.Get("/actors", actorHandler.List)
	r.Get("/actors/{id}", actorHandler.GetByID)
	r.Get("/directors", directorHandler.List)
	r.Get("/directors/{id}", directorHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		r.Post("/plays", playHandler.Create)
		r.Put("/plays/{id}", playHandler.Update)
		r.Delete("/plays/{id}", playHandler.Delete)

		r.Post("/actors", actorHandler.Create)
		r.Put("/actors/{id}", actorHandler.Update)
		r.Delete("/actors/{id}", actorHandler.Delete)

		r.Post("/directors", directorHandler.Create)
		r.Put("/directors/{id}", directorHandler.Update)
		r.Delete("/directors/{id}", directorHandler.Delete)

		// Cast and crew assignments
		r.Post("/plays/{id}/actors/{actorID}", actorHandler.LinkPlay)
		r.Delete("/plays/{id}/actors/{actorID}", actorHandler.UnlinkPlay)
		r.Post("/plays/{id}/directors/{directorID}", directorHandler.LinkPlay)
		r.Delete("/plays/{id}/directors/{directorID}", directorHandler.UnlinkPlay)
	})
}
