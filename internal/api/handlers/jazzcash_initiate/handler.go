package jazzcash_initiate

import (
	"net/http"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
)

const msgInvalidRequestBody = "Invalid request body"

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/jazzcash/initiate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InitiateRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /jazzcash/initiate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.InitiateJazzCash(r.Context(), req.ToServiceRequest())
	if err != nil {
		// Клиент ушел во время искусственной задержки, отвечать некому
		h.logger.Warn("POST /jazzcash/initiate - Request abandoned: %v", err)
		return
	}

	h.logger.Info("POST /jazzcash/initiate - Mock payment initiated: transaction_ref=%s", result.TransactionRef)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
