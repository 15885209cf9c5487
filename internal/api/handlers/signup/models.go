package signup

import (
	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/internal/service/users"
)

// SignupRequest HTTP request model
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SignupRequest) ToServiceRequest() *users.SignupRequest {
	return &users.SignupRequest{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *users.AuthResponse) *AuthResponse {
	return &AuthResponse{
		Token: resp.Token,
		User:  resp.User,
	}
}
