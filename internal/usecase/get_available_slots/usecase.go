package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

// UseCase use case для получения слотов площадки
// Список не зависит от существующих бронирований: занятость не проверяется
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%s, date=%s", req.CourtName, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Площадка должна быть в каталоге
	court, ok := domain.FindCourt(req.CourtName)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: court=%q not found", req.CourtName)
		return nil, fmt.Errorf("%w: %s", ErrCourtNotFound, req.CourtName)
	}

	// 3. Прошедшие даты не бронируются
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date=%s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	hourly := domain.HourlySlots()
	slots := make([]Slot, 0, len(hourly))
	for _, start := range hourly {
		end, err := start.AddHoursWrapped(domain.MinDuration)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %s: %v", ErrInvalidInput, start, err)
		}
		slots = append(slots, Slot{StartTime: start, EndTime: end})
	}

	uc.logger.Info("GetAvailableSlots: returning %d slots for court=%s", len(slots), court.Name)
	return &Response{
		Date:      req.Date,
		CourtName: court.Name,
		Slots:     slots,
	}, nil
}
