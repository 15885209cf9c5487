package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей или неверном формате
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCourtNotFound возвращается, когда площадки нет в каталоге
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время начала не совпадает с часовым слотом
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidDuration возвращается при длительности вне диапазона 1-4 часа
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
