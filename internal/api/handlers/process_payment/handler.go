package process_payment

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

// Handle POST /api/payment/process
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /payment/process - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ProcessPayment(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Warn("POST /payment/process - Request abandoned: %v", err)
		return
	}

	h.logger.Info("POST /payment/process - Mock payment processed: transaction_id=%s", result.TransactionID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
