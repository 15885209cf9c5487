package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

// Draft field names, used in validation results
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldCourt         = "court"
	FieldDate          = "date"
	FieldStartTime     = "startTime"
	FieldDuration      = "duration"
	FieldPaymentMethod = "paymentMethod"
)

// BookingDraft in-progress booking data held by the wizard
type BookingDraft struct {
	Name          string
	Email         string
	Phone         string
	Court         string
	Date          time.Time // нулевое значение = дата не выбрана
	StartTime     types.TimeString
	DurationHours int
	PaymentMethod PaymentMethod
}

// NewBookingDraft returns an empty draft, optionally seeded with the user profile
func NewBookingDraft(profile *UserProfile) BookingDraft {
	draft := BookingDraft{DurationHours: DefaultDuration}
	if profile != nil {
		draft.Name = profile.Name
		draft.Email = profile.Email
		draft.Phone = profile.Phone
	}
	return draft
}

// MissingDetails returns the required step-one fields that are empty, in form order
func (d *BookingDraft) MissingDetails() []string {
	missing := make([]string, 0)
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, FieldEmail)
	}
	if strings.TrimSpace(d.Phone) == "" {
		missing = append(missing, FieldPhone)
	}
	if strings.TrimSpace(d.Court) == "" {
		missing = append(missing, FieldCourt)
	}
	if d.Date.IsZero() {
		missing = append(missing, FieldDate)
	}
	if d.StartTime.IsZero() {
		missing = append(missing, FieldStartTime)
	}
	return missing
}

// ResetSelection clears everything chosen for a particular booking
// Customer fields are handled by the caller
func (d *BookingDraft) ResetSelection() {
	d.Court = ""
	d.Date = time.Time{}
	d.StartTime = ""
	d.DurationHours = DefaultDuration
	d.PaymentMethod = ""
}

// ClearCustomer clears name, email and phone
func (d *BookingDraft) ClearCustomer() {
	d.Name = ""
	d.Email = ""
	d.Phone = ""
}

// EndTime returns start + duration on the same day, or zero when no start time is chosen
func (d *BookingDraft) EndTime() types.TimeString {
	if d.StartTime.IsZero() {
		return ""
	}
	end, err := d.StartTime.AddHoursWrapped(d.DurationHours)
	if err != nil {
		return ""
	}
	return end
}

// Price returns the derived price breakdown
func (d *BookingDraft) Price() Price {
	return CalculatePrice(d.DurationHours)
}
