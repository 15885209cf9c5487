package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/internal/service/bookings"
	"github.com/m04kA/SMC-PadelBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

type stubService struct {
	resp *models.BookingResponse
	err  error
}

func (s *stubService) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/bookings/{bookingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&stubService{resp: &models.BookingResponse{ID: "b-1", CourtName: "Court A", TotalAmount: 1200}}, "/api/bookings/b-1")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, int64(1200), resp.TotalAmount)
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(&stubService{err: bookings.ErrBookingNotFound}, "/api/bookings/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&stubService{err: errors.New("db down")}, "/api/bookings/b-1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
