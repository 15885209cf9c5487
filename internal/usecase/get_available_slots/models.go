package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CourtName string
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time
	CourtName string
	Slots     []Slot
}

// Slot часовой слот начала игры
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString // конец минимальной (часовой) брони
}
