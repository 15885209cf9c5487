package check_user

import "context"

type UserService interface {
	CheckUser(ctx context.Context, email, phone string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
