package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

// validateRequest валидирует обязательные поля и их формат
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") || len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CourtName) == "" {
		return fmt.Errorf("%w: courtName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if !domain.IsHourlySlot(req.StartTime) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
	}

	if !domain.IsValidDuration(req.DurationHours) {
		return fmt.Errorf("%w: %d hours", ErrInvalidDuration, req.DurationHours)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом относительно now
func validateDate(bookingDate, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast сравнивает только календарные даты
func isDateInPast(date, now time.Time) bool {
	bookingDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return bookingDay.Before(today)
}
