package domain

import "github.com/m04kA/SMC-PadelBooking/pkg/types"

// HourlySlots returns the fixed hourly start times 08:00..22:00
// Existing bookings are not taken into account
func HourlySlots() []types.TimeString {
	slots := make([]types.TimeString, 0, LastSlotHour-FirstSlotHour+1)
	for hour := FirstSlotHour; hour <= LastSlotHour; hour++ {
		slots = append(slots, types.NewTimeStringFromHour(hour))
	}
	return slots
}

// IsHourlySlot checks that the time is one of HourlySlots
func IsHourlySlot(t types.TimeString) bool {
	for _, slot := range HourlySlots() {
		if slot == t {
			return true
		}
	}
	return false
}
