package adaptor

import (
	"encoding/json"
	"net/http"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /register (public)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "success", auth)
}

// Login handles POST /token (public)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}
