package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

func TestCalculatePrice(t *testing.T) {
	for _, hours := range DurationOptions() {
		price := CalculatePrice(hours)
		assert.Equal(t, int64(1200*hours), price.Total, "duration=%d", hours)
		assert.Equal(t, int64(1000*hours), price.Base, "duration=%d", hours)
		assert.Equal(t, int64(200*hours), price.Tax, "duration=%d", hours)
	}

	price := CalculatePrice(2)
	assert.Equal(t, Price{Base: 2000, Tax: 400, Total: 2400}, price)
}

func TestDurationOptions(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, DurationOptions())
	assert.True(t, IsValidDuration(4))
	assert.False(t, IsValidDuration(0))
	assert.False(t, IsValidDuration(5))
}

func TestHourlySlots(t *testing.T) {
	slots := HourlySlots()
	require.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("22:00"), slots[len(slots)-1])

	assert.True(t, IsHourlySlot("13:00"))
	assert.False(t, IsHourlySlot("07:00"))
	assert.False(t, IsHourlySlot("13:30"))
	assert.False(t, IsHourlySlot("23:00"))
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod(" JazzCash ")
	require.NoError(t, err)
	assert.Equal(t, PaymentJazzCash, m)

	_, err = ParsePaymentMethod("bitcoin")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)

	assert.Equal(t, "EasyPaisa", PaymentEasyPaisa.Label())
}

func TestFindCourt(t *testing.T) {
	c, ok := FindCourt(" court a ")
	require.True(t, ok)
	assert.Equal(t, "Court A", c.Name)

	_, ok = FindCourt("Court Z")
	assert.False(t, ok)

	bookable := BookableCourts()
	require.Len(t, bookable, 2)
	assert.Equal(t, "Court B", bookable[1].Name)
}

func TestBookingDraft_MissingDetails(t *testing.T) {
	draft := NewBookingDraft(&UserProfile{Name: "Ali", Email: "ali@example.com", Phone: "03001234567"})
	assert.Equal(t, []string{FieldCourt, FieldDate, FieldStartTime}, draft.MissingDetails())
	assert.Equal(t, DefaultDuration, draft.DurationHours)

	draft.Court = "Court A"
	draft.Date = time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC)
	draft.StartTime = "10:00"
	assert.Empty(t, draft.MissingDetails())

	draft.Name = "   "
	assert.Equal(t, []string{FieldName}, draft.MissingDetails())
}

func TestBookingDraft_EndTime(t *testing.T) {
	draft := NewBookingDraft(nil)
	assert.True(t, draft.EndTime().IsZero())

	draft.StartTime = "21:00"
	draft.DurationHours = 4
	assert.Equal(t, types.TimeString("01:00"), draft.EndTime())
}

func TestBookingDraft_ResetSelection(t *testing.T) {
	draft := BookingDraft{
		Name:          "Ali",
		Court:         "Court B",
		Date:          time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		DurationHours: 3,
		PaymentMethod: PaymentCash,
	}

	draft.ResetSelection()

	assert.Equal(t, "Ali", draft.Name)
	assert.Empty(t, draft.Court)
	assert.True(t, draft.Date.IsZero())
	assert.True(t, draft.StartTime.IsZero())
	assert.Equal(t, 1, draft.DurationHours)
	assert.Empty(t, draft.PaymentMethod)
}

func TestSession_IsAuthenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.IsAuthenticated())
	assert.False(t, (&Session{Token: "t"}).IsAuthenticated())
	assert.True(t, (&Session{Token: "t", User: &UserProfile{Name: "Ali"}}).IsAuthenticated())
}

func TestBooking_EndTimeAndPrice(t *testing.T) {
	b := &Booking{StartTime: "20:00", DurationHours: 2}

	end, err := b.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("22:00"), end)
	assert.Equal(t, int64(2400), b.Price().Total)
}
