package check_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/service/users"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgUserNotFound       = "User not found. Please signup first."
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

// Handle POST /api/bookings/check-user
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-user - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	exists, err := h.service.CheckUser(r.Context(), req.Email, req.Phone)
	if err != nil {
		var vErr *users.ValidationError
		if errors.As(err, &vErr) {
			h.logger.Warn("POST /bookings/check-user - Validation failed: %v", err)
			handlers.RespondBadRequest(w, vErr.Message)
			return
		}
		h.logger.Error("POST /bookings/check-user - Failed to check user: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	if !exists {
		h.logger.Warn("POST /bookings/check-user - User not found: email=%s, phone=%s", req.Email, req.Phone)
		handlers.RespondNotFound(w, msgUserNotFound)
		return
	}

	h.logger.Info("POST /bookings/check-user - User exists: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, &CheckUserResponse{Exists: true})
}
