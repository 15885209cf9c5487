package users

import (
	"context"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByLogin(ctx context.Context, email, phone string) (*domain.User, error)
	Exists(ctx context.Context, email, phone string) (bool, error)
}

// TokenIssuer выпускает токен сессии для пользователя
type TokenIssuer interface {
	Issue(sub, email, phone string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
