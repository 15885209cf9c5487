package list_courts

import (
	"net/http"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/courts
// Query params: bookable=true оставляет только площадки мастера бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courts := domain.Courts
	if r.URL.Query().Get("bookable") == "true" {
		courts = domain.BookableCourts()
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainCourts(courts))
}
