package users

import (
	"strings"
	"unicode"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

// Поля формы регистрации
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldPassword = "password"
	FieldConfirm  = "confirmPassword"
)

// validateSignup проверяет поля в порядке формы и возвращает первую ошибку
func validateSignup(req *SignupRequest) error {
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return &ValidationError{Field: FieldName, Message: "Full name is required"}
	case len(name) < domain.MinNameLength:
		return &ValidationError{Field: FieldName, Message: "Name must be at least 3 characters"}
	case len(name) > domain.MaxNameLength:
		return &ValidationError{Field: FieldName, Message: "Name is too long"}
	}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		return &ValidationError{Field: FieldEmail, Message: "Email is required"}
	case !strings.Contains(email, "@") || len(email) > domain.MaxEmailLength:
		return &ValidationError{Field: FieldEmail, Message: "Enter a valid email"}
	}

	phone := strings.TrimSpace(req.Phone)
	switch {
	case phone == "":
		return &ValidationError{Field: FieldPhone, Message: "Phone number is required"}
	case !isValidPhone(phone):
		return &ValidationError{Field: FieldPhone, Message: "Enter a valid 10-11 digit phone number"}
	}

	switch {
	case len(req.Password) < domain.MinPasswordLength:
		return &ValidationError{Field: FieldPassword, Message: "Minimum 6 characters required"}
	case !strings.ContainsFunc(req.Password, unicode.IsUpper):
		return &ValidationError{Field: FieldPassword, Message: "Must contain at least one uppercase letter"}
	case !strings.ContainsFunc(req.Password, isASCIIDigit):
		return &ValidationError{Field: FieldPassword, Message: "Must contain at least one number"}
	}

	if req.Password != req.ConfirmPassword {
		return &ValidationError{Field: FieldConfirm, Message: "Passwords do not match"}
	}

	return nil
}

// isValidPhone телефон из 10-11 цифр без разделителей
func isValidPhone(phone string) bool {
	if len(phone) < domain.MinPhoneDigits || len(phone) > domain.MaxPhoneDigits {
		return false
	}
	for _, r := range phone {
		if !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// splitLogin определяет, что введено: email (есть "@") или телефон
func splitLogin(emailOrPhone string) (email, phone string) {
	login := strings.TrimSpace(emailOrPhone)
	if strings.Contains(login, "@") {
		return strings.ToLower(login), ""
	}
	return "", login
}
