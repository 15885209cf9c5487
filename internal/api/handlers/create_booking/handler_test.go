package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-PadelBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

type stubUseCase struct {
	got *createBooking.Request
	err error
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &createBooking.Response{
		ID:            "booking-1",
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CourtName:     "Court A",
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       "12:00",
		DurationHours: req.DurationHours,
		Price:         domain.CalculatePrice(req.DurationHours),
		CreatedAt:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}, nil
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))
	return rec
}

const validBody = `{"name":"Ali Khan","email":"ali@example.com","phone":"03001234567","courtName":"Court A","date":"2025-03-02","time":"10:00","duration":2}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{}
	rec := post(NewHandler(uc, logger.Nop()), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgBookingCreated, resp.Message)
	assert.Equal(t, "booking-1", resp.Booking.ID)
	assert.Equal(t, "2025-03-02", resp.Booking.Date)
	assert.Equal(t, "10:00", resp.Booking.Time)
	assert.Equal(t, "12:00", resp.Booking.EndTime)
	assert.Equal(t, 2, resp.Booking.Duration)
	assert.Equal(t, int64(2000), resp.Booking.BaseAmount)
	assert.Equal(t, int64(400), resp.Booking.TaxAmount)
	assert.Equal(t, int64(2400), resp.Booking.TotalAmount)
	assert.Equal(t, "2025-03-01T09:00:00Z", resp.Booking.CreatedAt)

	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw["booking"], "_id")
}

func TestHandle_DefaultDuration(t *testing.T) {
	uc := &stubUseCase{}
	rec := post(NewHandler(uc, logger.Nop()),
		`{"name":"Ali","email":"a@b.c","phone":"1","courtName":"Court A","date":"2025-03-02","time":"10:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, domain.DefaultDuration, uc.got.DurationHours)
}

func TestHandle_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "broken json", body: `{`, wantMsg: msgInvalidRequestBody},
		{name: "bad date", body: `{"date":"02/03/2025","time":"10:00"}`, wantMsg: msgInvalidDate},
		{name: "bad time", body: `{"date":"2025-03-02","time":"10am"}`, wantMsg: msgInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			rec := post(NewHandler(uc, logger.Nop()), tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantMsg: msgMissingFields},
		{err: createBooking.ErrCourtNotFound, wantStatus: http.StatusBadRequest, wantMsg: msgCourtNotFound},
		{err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest, wantMsg: msgDateInPast},
		{err: createBooking.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidTimeSlot},
		{err: createBooking.ErrInvalidDuration, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidDuration},
		{err: fmt.Errorf("%w: db down", createBooking.ErrInternal), wantStatus: http.StatusInternalServerError, wantMsg: msgCreateFailed},
		{err: errors.New("unexpected"), wantStatus: http.StatusInternalServerError, wantMsg: msgCreateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := post(NewHandler(&stubUseCase{err: tt.err}, logger.Nop()), validBody)

			require.Equal(t, tt.wantStatus, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}
