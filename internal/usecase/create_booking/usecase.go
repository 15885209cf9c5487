package create_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

// UseCase use case для создания бронирования
// Наложение бронирований не проверяется: слот остается доступным для повторной записи
type UseCase struct {
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%s, date=%s, time=%s, duration=%d, email=%s",
		req.CourtName, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Площадка должна быть в каталоге
	court, ok := domain.FindCourt(req.CourtName)
	if !ok {
		uc.logger.Warn("CreateBooking: court=%q not found in catalog", req.CourtName)
		return nil, fmt.Errorf("%w: %s", ErrCourtNotFound, req.CourtName)
	}

	// 3. Дата не раньше сегодняшней
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date=%s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	booking := &domain.Booking{
		ID:            uc.newID(),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         strings.TrimSpace(req.Phone),
		CourtName:     court.Name,
		Date:          time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
	}

	// 4. Сохраняем
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to save booking: %v", err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(created.CourtName)
	}

	resp, err := fromDomain(created)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to build response for booking id=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: build response: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%s, court=%s, total=%d",
		resp.ID, resp.CourtName, resp.Price.Total)
	return resp, nil
}
