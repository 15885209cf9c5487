package login

import (
	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/internal/service/users"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *LoginRequest) ToServiceRequest() *users.LoginRequest {
	return &users.LoginRequest{
		EmailOrPhone: r.EmailOrPhone,
		Password:     r.Password,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *users.AuthResponse) *AuthResponse {
	return &AuthResponse{
		Token: resp.Token,
		User:  resp.User,
	}
}
