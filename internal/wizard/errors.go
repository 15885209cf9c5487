package wizard

import (
	"errors"
	"strings"
)

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля первого шага
	ErrMissingFields = errors.New("wizard: please fill all booking details")

	// ErrLoginRequired возвращается при переходе к оплате без входа
	ErrLoginRequired = errors.New("wizard: please login first to continue to payment")

	// ErrPaymentMethodRequired возвращается при отправке без способа оплаты
	ErrPaymentMethodRequired = errors.New("wizard: please select a payment method")

	// ErrBookingFailed возвращается, когда сервер не создал бронирование
	ErrBookingFailed = errors.New("wizard: booking failed")

	// ErrInvalidTransition возвращается при действии, недопустимом в текущем шаге
	ErrInvalidTransition = errors.New("wizard: invalid transition")

	// ErrSubmitInProgress возвращается при повторной отправке до завершения первой
	ErrSubmitInProgress = errors.New("wizard: booking is already being submitted")

	// ErrInvalidField возвращается сеттером для недопустимого значения
	ErrInvalidField = errors.New("wizard: invalid field value")
)

// MissingFieldsError перечисляет незаполненные поля в порядке формы
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// BookingFailedError сообщение сервера (или общее сообщение) о неудачном создании
type BookingFailedError struct {
	Message string
	Cause   error
}

func (e *BookingFailedError) Error() string {
	return e.Message
}

func (e *BookingFailedError) Unwrap() []error {
	return []error{ErrBookingFailed, e.Cause}
}

// FieldError недопустимое значение конкретного поля
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return ErrInvalidField.Error() + ": " + e.Field + "=" + e.Value
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}
