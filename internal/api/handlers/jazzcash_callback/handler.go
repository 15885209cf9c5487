package jazzcash_callback

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

// Handle POST /api/jazzcash/callback
// Подпись уведомления не проверяется, ответ всегда успешный
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CallbackRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /jazzcash/callback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.service.JazzCashCallback(r.Context(), req.ToServiceRequest())

	h.logger.Info("POST /jazzcash/callback - Mock callback acknowledged: txn_ref=%s", result.TxnRefNo)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
