package get_user_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PadelBooking/internal/service/bookings/models"
)

const (
	msgLoginRequired = "Please login first."
	msgInvalidLimit  = "Invalid limit"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/users/me/bookings
// Пользователь берется из токена, бронирования сопоставляются по email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok || user.Email == "" {
		h.logger.Warn("GET /users/me/bookings - Missing authenticated user")
		handlers.RespondUnauthorized(w, msgLoginRequired)
		return
	}

	req := &models.GetUserBookingsRequest{Email: user.Email}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /users/me/bookings - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /users/me/bookings - Failed to get bookings: user_id=%s, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/bookings - Retrieved %d bookings: user_id=%s", result.Total, user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
