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

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// List handles GET /customers (admin only)
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip := utils.ParseInt(query.Get("skip"), 0)
	limit := utils.ParseInt(query.Get("limit"), utils.DefaultLimit)

	customers, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeServiceError(w, h.log, err, "list customers")
		return
	}

	utils.ResponseSuccess(w, "success", customers)
}

// GetByID handles GET /customers/{id} (admin only)
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	customer, err := h.service.GetByID(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, h.log, err, "get customer")
		return
	}

	utils.ResponseSuccess(w, "success", customer)
}

// Update handles PUT /customers/{id} (admin only)
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	var req request.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	customer, err := h.service.Update(r.Context(), customerID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update customer")
		return
	}

	utils.ResponseSuccess(w, "success", customer)
}

// Delete handles DELETE /customers/{id} (admin only)
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		writeServiceError(w, h.log, err, "delete customer")
		return
	}

	utils.ResponseNoContent(w)
}
