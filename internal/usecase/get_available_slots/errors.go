package get_available_slots

import "errors"

var (
	// ErrCourtNotFound возвращается, когда площадки нет в каталоге
	ErrCourtNotFound = errors.New("court not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
