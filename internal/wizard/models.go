package wizard

import (
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

// State шаг мастера
type State int

const (
	StateDetails State = iota + 1
	StatePayment
	StateReceipt
)

func (s State) String() string {
	switch s {
	case StateDetails:
		return "details"
	case StatePayment:
		return "payment"
	case StateReceipt:
		return "receipt"
	default:
		return "unknown"
	}
}

// LoginRedirect куда отправлять пользователя без сессии
const LoginRedirect = "/login"

// Result итог перехода; при ошибке From == To
type Result struct {
	From     State
	To       State
	Redirect string
	Err      error
}

// Moved сообщает, сменился ли шаг
func (r Result) Moved() bool {
	return r.From != r.To
}

// Receipt данные квитанции после успешного бронирования
type Receipt struct {
	BookingID     string
	BookingDate   string // дата из ответа сервера, либо сегодняшняя
	Name          string
	Email         string
	Phone         string
	Court         string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	PaymentMethod domain.PaymentMethod
	Price         domain.Price
}
