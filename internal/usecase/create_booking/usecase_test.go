package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

type stubRepo struct {
	saved []*domain.Booking
	err   error
}

func (r *stubRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b.CreatedAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	r.saved = append(r.saved, b)
	return b, nil
}

type stubMetrics struct {
	courts []string
}

func (m *stubMetrics) IncBookingCreated(court string) {
	m.courts = append(m.courts, court)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase(repo *stubRepo, m *stubMetrics) *UseCase {
	uc := NewUseCase(repo, m, logger.Nop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)}
	uc.newID = func() string { return "booking-1" }
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:          "Ali Khan",
		Email:         " Ali@Example.com ",
		Phone:         "03001234567",
		CourtName:     "court a",
		Date:          time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("21:00"),
		DurationHours: 4,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &stubRepo{}
	m := &stubMetrics{}
	uc := newUseCase(repo, m)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "Court A", resp.CourtName)
	assert.Equal(t, "ali@example.com", resp.Email)
	assert.Equal(t, types.TimeString("01:00"), resp.EndTime)
	assert.Equal(t, domain.Price{Base: 4000, Tax: 800, Total: 4800}, resp.Price)
	assert.False(t, resp.CreatedAt.IsZero())

	require.Len(t, repo.saved, 1)
	assert.Equal(t, []string{"Court A"}, m.courts)
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	req := validRequest()
	req.Date = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := newUseCase(&stubRepo{}, &stubMetrics{}).Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "missing name", mutate: func(r *Request) { r.Name = " " }, wantErr: ErrInvalidInput},
		{name: "email without at", mutate: func(r *Request) { r.Email = "ali.example.com" }, wantErr: ErrInvalidInput},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }, wantErr: ErrInvalidInput},
		{name: "phone too long", mutate: func(r *Request) { r.Phone = "+92 300 1234567 ext 12" }, wantErr: ErrInvalidInput},
		{name: "missing court", mutate: func(r *Request) { r.CourtName = "" }, wantErr: ErrInvalidInput},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "missing time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: ErrInvalidInput},
		{name: "off-grid time", mutate: func(r *Request) { r.StartTime = "10:30" }, wantErr: ErrInvalidTimeSlot},
		{name: "before opening", mutate: func(r *Request) { r.StartTime = "07:00" }, wantErr: ErrInvalidTimeSlot},
		{name: "zero duration", mutate: func(r *Request) { r.DurationHours = 0 }, wantErr: ErrInvalidDuration},
		{name: "five hours", mutate: func(r *Request) { r.DurationHours = 5 }, wantErr: ErrInvalidDuration},
		{name: "unknown court", mutate: func(r *Request) { r.CourtName = "Court Z" }, wantErr: ErrCourtNotFound},
		{name: "past date", mutate: func(r *Request) { r.Date = time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC) }, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			req := validRequest()
			tt.mutate(req)

			_, err := newUseCase(repo, &stubMetrics{}).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.saved)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	m := &stubMetrics{}
	uc := newUseCase(&stubRepo{err: errors.New("db down")}, m)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, m.courts)
}
