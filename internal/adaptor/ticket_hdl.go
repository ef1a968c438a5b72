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

type TicketHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.BookingService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// Create handles POST /tickets (authenticated)
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), customerID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "book ticket")
		return
	}

	utils.ResponseCreated(w, "success", ticket)
}

// List handles GET /tickets (authenticated, own tickets only)
func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	tickets, err := h.service.ListTickets(r.Context(), customerID, skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// Delete handles DELETE /tickets (authenticated, own tickets only)
func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.DeleteTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.DeleteTicket(r.Context(), customerID, &req); err != nil {
		writeServiceError(w, h.log, err, "delete ticket")
		return
	}

	utils.ResponseNoContent(w)
}

// AvailableSeats handles GET /showtimes/{play_id}/{datetime}/available-seats (public)
func (h *TicketHandler) AvailableSeats(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "play_id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	dateAndTime, ok := datetimeFromURL(w, r)
	if !ok {
		return
	}

	seats, err := h.service.Availability(r.Context(), playID, dateAndTime)
	if err != nil {
		writeServiceError(w, h.log, err, "get seat availability")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}
