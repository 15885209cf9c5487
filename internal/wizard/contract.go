package wizard

import (
	"context"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/internal/integrations/bookingapi"
)

// SessionProvider источник текущей клиентской сессии
// nil или сессия без токена означает, что пользователь не вошел
type SessionProvider interface {
	Current() *domain.Session
}

// BookingCreator создает бронирование на сервере
type BookingCreator interface {
	CreateBooking(ctx context.Context, req *bookingapi.CreateBookingRequest) (*bookingapi.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
