package jazzcash_status

import (
	"net/http"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
)

const statusMessage = "JazzCash Mock API is working"

// StatusResponse описание доступных mock-эндпоинтов
type StatusResponse struct {
	Status    string    `json:"status"`
	Endpoints Endpoints `json:"endpoints"`
	Mock      bool      `json:"mock"`
}

type Endpoints struct {
	Initiate string `json:"initiate"`
	Callback string `json:"callback"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/jazzcash/test
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &StatusResponse{
		Status: statusMessage,
		Endpoints: Endpoints{
			Initiate: "POST /api/jazzcash/initiate",
			Callback: "POST /api/jazzcash/callback",
		},
		Mock: true,
	})
}
