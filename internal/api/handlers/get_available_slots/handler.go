package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-PadelBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate   = "Date is required"
	msgInvalidDate   = "Invalid date format, expected YYYY-MM-DD"
	msgDateInPast    = "Date cannot be in the past"
	msgCourtNotFound = "Court not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/courts/{court}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	court := mux.Vars(r)["court"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{court}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(court, dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{court}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{court}/available-slots - Court not found: court=%q", court)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /courts/{court}/available-slots - Date in the past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /courts/{court}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgCourtNotFound)

		default:
			h.logger.Error("GET /courts/{court}/available-slots - Failed to get slots: court=%q, error=%v", court, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{court}/available-slots - Returned %d slots: court=%s, date=%s",
		len(result.Slots), result.CourtName, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
