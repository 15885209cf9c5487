package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/pkg/auth"
)

const msgUnauthorized = "Please login first."

type contextKey string

const userContextKey contextKey = "user"

// TokenParser проверяет access-токен
type TokenParser interface {
	Parse(tokenStr string) (*auth.Claims, error)
}

// AuthUser данные пользователя из токена
type AuthUser struct {
	ID    string
	Email string
	Phone string
}

// Auth проверяет заголовок Authorization: Bearer <token>
// и кладет данные пользователя в контекст запроса
func Auth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			user := AuthUser{ID: claims.Sub, Email: claims.Email, Phone: claims.Phone}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, user AuthUser) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser извлекает пользователя из контекста
func GetUser(ctx context.Context) (AuthUser, bool) {
	user, ok := ctx.Value(userContextKey).(AuthUser)
	if !ok || user.ID == "" {
		return AuthUser{}, false
	}
	return user, true
}
