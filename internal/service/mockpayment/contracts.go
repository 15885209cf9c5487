package mockpayment

import (
	"context"
	"time"
)

// Clock источник текущего времени (подменяется в тестах)
type Clock interface {
	Now() time.Time
}

// Delayer искусственная задержка ответа (подменяется в тестах)
type Delayer interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Metrics счетчик выпущенных фиктивных транзакций
type Metrics interface {
	IncMockTransaction(provider, operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealClock реальное время для production
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// TimerDelayer задержка на таймере, прерывается отменой контекста
type TimerDelayer struct{}

// Sleep ждет d или отмены ctx
func (TimerDelayer) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
