package signup

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/service/users"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgUserExists         = "User with this email or phone already exists"
	msgSignupFailed       = "Signup failed"
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

// Handle POST /api/users/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Signup(r.Context(), req.ToServiceRequest())
	if err != nil {
		var vErr *users.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /users/signup - Validation failed: field=%s", vErr.Field)
			handlers.RespondBadRequest(w, vErr.Message)

		case errors.Is(err, users.ErrUserExists):
			h.logger.Warn("POST /users/signup - User already exists: email=%s", req.Email)
			handlers.RespondConflict(w, msgUserExists)

		default:
			h.logger.Error("POST /users/signup - Failed to sign up: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSignupFailed)
		}
		return
	}

	h.logger.Info("POST /users/signup - User registered: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
