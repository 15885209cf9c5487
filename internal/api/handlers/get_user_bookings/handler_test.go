package get_user_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PadelBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

type stubService struct {
	got *models.GetUserBookingsRequest
	err error
}

func (s *stubService) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: "b-2"}, {ID: "b-1"}},
		Total:    2,
	}, nil
}

func request(target string, user *middleware.AuthUser) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if user != nil {
		r = r.WithContext(middleware.WithUser(r.Context(), *user))
	}
	return r
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, request("/api/users/me/bookings?limit=10",
		&middleware.AuthUser{ID: "u-1", Email: "ali@example.com"}))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "ali@example.com", svc.got.Email)
	assert.Equal(t, uint64(10), svc.got.Limit)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "b-2", resp.Bookings[0].ID)
}

func TestHandle_Errors(t *testing.T) {
	user := &middleware.AuthUser{ID: "u-1", Email: "ali@example.com"}

	tests := []struct {
		name       string
		svc        *stubService
		req        *http.Request
		wantStatus int
	}{
		{name: "no user", svc: &stubService{}, req: request("/api/users/me/bookings", nil), wantStatus: http.StatusUnauthorized},
		{name: "bad limit", svc: &stubService{}, req: request("/api/users/me/bookings?limit=-1", user), wantStatus: http.StatusBadRequest},
		{name: "service failure", svc: &stubService{err: errors.New("db down")}, req: request("/api/users/me/bookings", user), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(tt.svc, logger.Nop()).Handle(rec, tt.req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
