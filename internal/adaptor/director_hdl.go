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

type DirectorHandler struct {
	service usecase.DirectorService
	log     *zap.Logger
}

func NewDirectorHandler(service usecase.DirectorService, log *zap.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		log:     log.With(zap.String("handler", "director")),
	}
}

// Create handles POST /directors (admin only)
func (h *DirectorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDirectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	director, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create director")
		return
	}

	utils.ResponseCreated(w, "success", director)
}

// GetByID handles GET /directors/{id} (public)
func (h *DirectorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	directorID := chi.URLParam(r, "id")
	if directorID == "" {
		utils.ResponseBadRequest(w, "Director ID is required", nil)
		return
	}

	director, err := h.service.GetByID(r.Context(), directorID)
	if err != nil {
		writeServiceError(w, h.log, err, "get director")
		return
	}

	utils.ResponseSuccess(w, "success", director)
}

// List handles GET /directors (public)
func (h *DirectorHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	directors, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list directors")
		return
	}

	utils.ResponseSuccess(w, "success", directors)
}

// Update handles PUT /directors/{id} (admin only)
func (h *DirectorHandler) Update(w http.ResponseWriter, r *http.Request) {
	directorID := chi.URLParam(r, "id")
	if directorID == "" {
		utils.ResponseBadRequest(w, "Director ID is required", nil)
		return
	}

	var req request.UpdateDirectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	director, err := h.service.Update(r.Context(), directorID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update director")
		return
	}

	utils.ResponseSuccess(w, "success", director)
}

// Delete handles DELETE /directors/{id} (admin only)
func (h *DirectorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	directorID := chi.URLParam(r, "id")
	if directorID == "" {
		utils.ResponseBadRequest(w, "Director ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), directorID); err != nil {
		writeServiceError(w, h.log, err, "delete director")
		return
	}

	utils.ResponseNoContent(w)
}

// LinkPlay handles POST /plays/{id}/directors/{directorID} (admin only)
func (h *DirectorHandler) LinkPlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	directorID := chi.URLParam(r, "directorID")
	if playID == "" || directorID == "" {
		utils.ResponseBadRequest(w, "Play ID and director ID are required", nil)
		return
	}

	if err := h.service.LinkPlay(r.Context(), directorID, playID); err != nil {
		writeServiceError(w, h.log, err, "link director to play")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// UnlinkPlay handles DELETE /plays/{id}/directors/{directorID} (admin only)
func (h *DirectorHandler) UnlinkPlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	directorID := chi.URLParam(r, "directorID")
	if playID == "" || directorID == "" {
		utils.ResponseBadRequest(w, "Play ID and director ID are required", nil)
		return
	}

	if err := h.service.UnlinkPlay(r.Context(), directorID, playID); err != nil {
		writeServiceError(w, h.log, err, "unlink director from play")
		return
	}

	utils.ResponseNoContent(w)
}
