package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowTimeHandler struct {
	service usecase.ShowTimeService
	log     *zap.Logger
}

func NewShowTimeHandler(service usecase.ShowTimeService, log *zap.Logger) *ShowTimeHandler {
	return &ShowTimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// Create handles POST /showtimes (admin only)
func (h *ShowTimeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "success", showtime)
}

// List handles GET /showtimes (public)
func (h *ShowTimeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	showtimes, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// ListForPlay handles GET /showtimes/{play_id} (public)
func (h *ShowTimeHandler) ListForPlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "play_id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	showtimes, err := h.service.ListForPlay(r.Context(), playID, skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list showtimes for play")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// Update handles PUT /showtimes/update (admin only)
func (h *ShowTimeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateShowTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.Update(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update showtime")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// Delete handles DELETE /showtimes (admin only), keyed by body
func (h *ShowTimeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteShowTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Delete(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "delete showtime")
		return
	}

	utils.ResponseNoContent(w)
}

// datetimeFromURL parses the {datetime} URL segment as RFC 3339.
func datetimeFromURL(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := chi.URLParam(r, "datetime")
	dateAndTime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Datetime must be RFC 3339", nil)
		return time.Time{}, false
	}
	return dateAndTime, true
}
