package signup

import (
	"context"

	"github.com/m04kA/SMC-PadelBooking/internal/service/users"
)

type UserService interface {
	Signup(ctx context.Context, req *users.SignupRequest) (*users.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
