package bookingapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при ошибках транспорта: сервер недоступен, таймаут
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается, когда тело ответа не удалось разобрать
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)

// APIError ответ сервера со статусом не 2xx
// Message берется из поля message или error тела ответа
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bookingapi: status %d", e.StatusCode)
	}
	return e.Message
}
