package adaptor

import (
	"encoding/json"
	"net/http"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// Create handles POST /actors (admin only)
func (h *ActorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "success", actor)
}

// GetByID handles GET /actors/{id} (public)
func (h *ActorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	actor, err := h.service.GetByID(r.Context(), actorID)
	if err != nil {
		writeServiceError(w, h.log, err, "get actor")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// List handles GET /actors (public)
func (h *ActorHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	actors, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list actors")
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// Update handles PUT /actors/{id} (admin only)
func (h *ActorHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	var req request.UpdateActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.Update(r.Context(), actorID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// Delete handles DELETE /actors/{id} (admin only). Refused with the
// blocking play titles while the actor is still linked.
func (h *ActorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actorID); err != nil {
		writeServiceError(w, h.log, err, "delete actor")
		return
	}

	utils.ResponseNoContent(w)
}

// LinkPlay handles POST /plays/{id}/actors/{actorID} (admin only)
func (h *ActorHandler) LinkPlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	actorID := chi.URLParam(r, "actorID")
	if playID == "" || actorID == "" {
		utils.ResponseBadRequest(w, "Play ID and actor ID are required", nil)
		return
	}

	if err := h.service.LinkPlay(r.Context(), actorID, playID); err != nil {
		writeServiceError(w, h.log, err, "link actor to play")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// UnlinkPlay handles DELETE /plays/{id}/actors/{actorID} (admin only)
func (h *ActorHandler) UnlinkPlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	actorID := chi.URLParam(r, "actorID")
	if playID == "" || actorID == "" {
		utils.ResponseBadRequest(w, "Play ID and actor ID are required", nil)
		return
	}

	if err := h.service.UnlinkPlay(r.Context(), actorID, playID); err != nil {
		writeServiceError(w, h.log, err, "unlink actor from play")
		return
	}

	utils.ResponseNoContent(w)
}
