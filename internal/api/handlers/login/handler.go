package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/service/users"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidCredentials = "Invalid credentials"
	msgLoginFailed        = "Login failed"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/users/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidCredentials):
			h.logger.Warn("POST /users/login - Invalid credentials: login=%s", req.EmailOrPhone)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /users/login - Failed to login: login=%s, error=%v", req.EmailOrPhone, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgLoginFailed)
		}
		return
	}

	h.logger.Info("POST /users/login - User logged in: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
