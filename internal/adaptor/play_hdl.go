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

type PlayHandler struct {
	service usecase.PlayService
	log     *zap.Logger
}

func NewPlayHandler(service usecase.PlayService, log *zap.Logger) *PlayHandler {
	return &PlayHandler{
		service: service,
		log:     log.With(zap.String("handler", "play")),
	}
}

// Create handles POST /plays (admin only)
func (h *PlayHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	play, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create play")
		return
	}

	utils.ResponseCreated(w, "success", play)
}

// GetByID handles GET /plays/{id} (public)
func (h *PlayHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	play, err := h.service.GetByID(r.Context(), playID)
	if err != nil {
		writeServiceError(w, h.log, err, "get play")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// List handles GET /plays (public)
func (h *PlayHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	plays, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list plays")
		return
	}

	utils.ResponseSuccess(w, "success", plays)
}

// Update handles PUT /plays/{id} (admin only)
func (h *PlayHandler) Update(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	var req request.UpdatePlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	play, err := h.service.Update(r.Context(), playID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update play")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// Delete handles DELETE /plays/{id} (admin only)
func (h *PlayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), playID); err != nil {
		writeServiceError(w, h.log, err, "delete play")
		return
	}

	utils.ResponseNoContent(w)
}
