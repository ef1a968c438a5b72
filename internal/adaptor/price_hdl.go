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

type PriceHandler struct {
	service usecase.PricingService
	log     *zap.Logger
}

func NewPriceHandler(service usecase.PricingService, log *zap.Logger) *PriceHandler {
	return &PriceHandler{
		service: service,
		log:     log.With(zap.String("handler", "price")),
	}
}

// Create handles POST /showtime-prices (admin only)
func (h *PriceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	price, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create price")
		return
	}

	utils.ResponseCreated(w, "success", price)
}

// ListForShowtime handles GET /showtime-prices/{play_id}/{datetime} (public)
func (h *PriceHandler) ListForShowtime(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "play_id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	dateAndTime, ok := datetimeFromURL(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	prices, err := h.service.ListForShowtime(r.Context(), playID, dateAndTime, skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list prices for showtime")
		return
	}

	utils.ResponseSuccess(w, "success", prices)
}

// Update handles PUT /showtime-prices (admin only)
func (h *PriceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	price, err := h.service.Update(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update price")
		return
	}

	utils.ResponseSuccess(w, "success", price)
}

// Delete handles DELETE /showtime-prices (admin only), keyed by body
func (h *PriceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.PriceKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Delete(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "delete price")
		return
	}

	utils.ResponseNoContent(w)
}
