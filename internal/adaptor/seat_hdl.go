package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// Create handles POST /seats (admin only). Re-posting an existing
// position returns that position instead of an error.
func (h *SeatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create seat")
		return
	}

	utils.ResponseCreated(w, "success", seat)
}

// Get handles GET /seats/{row}/{seat} (public)
func (h *SeatHandler) Get(w http.ResponseWriter, r *http.Request) {
	rowNo, seatNo, ok := seatKeyFromURL(w, r)
	if !ok {
		return
	}

	seat, err := h.service.Get(r.Context(), rowNo, seatNo)
	if err != nil {
		writeServiceError(w, h.log, err, "get seat")
		return
	}

	utils.ResponseSuccess(w, "success", seat)
}

// List handles GET /seats (public)
func (h *SeatHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	seats, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// Update handles PUT /seats/{row}/{seat} (admin only)
func (h *SeatHandler) Update(w http.ResponseWriter, r *http.Request) {
	rowNo, seatNo, ok := seatKeyFromURL(w, r)
	if !ok {
		return
	}

	var req request.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.Update(r.Context(), rowNo, seatNo, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update seat")
		return
	}

	utils.ResponseSuccess(w, "success", seat)
}

// Delete handles DELETE /seats (admin only), keyed by body
func (h *SeatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Delete(r.Context(), req.RowNo, req.SeatNo); err != nil {
		writeServiceError(w, h.log, err, "delete seat")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteAll handles DELETE /seats/all (admin only)
func (h *SeatHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteAll(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "delete all seats")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

func seatKeyFromURL(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	rowNo, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		utils.ResponseBadRequest(w, "Row number must be an integer", nil)
		return 0, 0, false
	}
	seatNo, err := strconv.Atoi(chi.URLParam(r, "seat"))
	if err != nil {
		utils.ResponseBadRequest(w, "Seat number must be an integer", nil)
		return 0, 0, false
	}
	return rowNo, seatNo, true
}
