package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name          string
	Email         string
	Phone         string
	CourtName     string
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала слота, например "10:00"
	DurationHours int
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	CourtName     string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	Price         domain.Price // Вычисляется, в БД не хранится
	CreatedAt     time.Time
}

func fromDomain(b *domain.Booking) (*Response, error) {
	endTime, err := b.EndTime()
	if err != nil {
		return nil, err
	}

	return &Response{
		ID:            b.ID,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		CourtName:     b.CourtName,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       endTime,
		DurationHours: b.DurationHours,
		Price:         b.Price(),
		CreatedAt:     b.CreatedAt,
	}, nil
}
