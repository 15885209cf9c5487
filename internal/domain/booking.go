package domain

import (
	"time"

	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

// Booking represents a persisted court booking
// Booking is created once and never mutated
type Booking struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	CourtName     string
	Date          time.Time // Дата без времени
	StartTime     types.TimeString
	DurationHours int
	CreatedAt     time.Time
}

// EndTime returns the end of the booking on the same day (hour rollover without date rollover)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddHoursWrapped(b.DurationHours)
}

// Price returns the derived price breakdown
func (b *Booking) Price() Price {
	return CalculatePrice(b.DurationHours)
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	Email string // Обязательный параметр
	Limit uint64 // 0 = без ограничения
}
