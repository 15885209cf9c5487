package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-PadelBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

func serve(target string) *httptest.ResponseRecorder {
	h := NewHandler(getAvailableSlots.NewUseCase(logger.Nop()), logger.Nop())

	router := mux.NewRouter()
	router.HandleFunc("/api/courts/{court}/available-slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve("/api/courts/Court%20A/available-slots?date=2999-01-01")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Court A", resp.CourtName)
	assert.Equal(t, "2999-01-01", resp.Date)
	require.Len(t, resp.Slots, 15)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "missing date", target: "/api/courts/Court%20A/available-slots", wantStatus: http.StatusBadRequest},
		{name: "bad date", target: "/api/courts/Court%20A/available-slots?date=01-01-2999", wantStatus: http.StatusBadRequest},
		{name: "past date", target: "/api/courts/Court%20A/available-slots?date=2000-01-01", wantStatus: http.StatusBadRequest},
		{name: "unknown court", target: "/api/courts/Nowhere/available-slots?date=2999-01-01", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(tt.target).Code)
		})
	}
}
