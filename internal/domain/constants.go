package domain

// Pricing constants
// Итоговая сумма всегда вычисляется, в хранилище не сохраняется
const (
	BaseRatePerHour = 1000 // Rs. за час
	TaxRatePercent  = 20   // налог 20%
	Currency        = "PKR"
)

// Slot constants
const (
	FirstSlotHour   = 8  // первый слот 08:00
	LastSlotHour    = 22 // последний слот 22:00
	MinDuration     = 1  // часов
	MaxDuration     = 4  // часов
	DefaultDuration = 1
)

// Business validation constants
const (
	MinNameLength     = 3
	MaxNameLength     = 100
	MaxEmailLength    = 255
	MinPhoneDigits    = 10
	MaxPhoneDigits    = 11
	MaxPhoneLength    = 20 // bookings.phone VARCHAR(20)
	MinPasswordLength = 6
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
