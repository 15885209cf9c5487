package health

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
)

const statusMessage = "PADELPROJECT API is running"

// HealthResponse карта основных маршрутов сервиса
type HealthResponse struct {
	Status    string `json:"status"`
	Routes    Routes `json:"routes"`
	Timestamp string `json:"timestamp"`
}

type Routes struct {
	Payment  string `json:"payment"`
	Test     string `json:"test"`
	Bookings string `json:"bookings"`
	Users    string `json:"users"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &HealthResponse{
		Status: statusMessage,
		Routes: Routes{
			Payment:  "/api/jazzcash",
			Test:     "/api/jazzcash/test",
			Bookings: "/api/bookings",
			Users:    "/api/users",
		},
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	})
}
