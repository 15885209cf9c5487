package users

import "github.com/m04kA/SMC-PadelBooking/internal/domain"

// SignupRequest данные формы регистрации
type SignupRequest struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// LoginRequest вход по email или телефону
type LoginRequest struct {
	EmailOrPhone string
	Password     string
}

// AuthResponse токен и профиль для клиентской сессии
type AuthResponse struct {
	Token string
	User  domain.UserProfile
}
