package users

import "errors"

var (
	// ErrInvalidInput возвращается при нарушении правил регистрации
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrUserExists возвращается, если email или телефон уже зарегистрированы
	ErrUserExists = errors.New("users: user already exists")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("users: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)

// ValidationError ошибка конкретного поля формы
// Message пригоден для показа пользователю
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
