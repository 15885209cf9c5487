package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase() *UseCase {
	uc := NewUseCase(logger.Nop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)}
	return uc
}

func TestExecute(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		CourtName: "court b",
		Date:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "Court B", resp.CourtName)
	require.Len(t, resp.Slots, 15)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("22:00"), resp.Slots[14].StartTime)
	assert.Equal(t, types.TimeString("23:00"), resp.Slots[14].EndTime)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "empty court", req: &Request{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)}, wantErr: ErrInvalidInput},
		{name: "zero date", req: &Request{CourtName: "Court A"}, wantErr: ErrInvalidInput},
		{name: "unknown court", req: &Request{CourtName: "Court Z", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)}, wantErr: ErrCourtNotFound},
		{name: "past date", req: &Request{CourtName: "Court A", Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)}, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase().Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
