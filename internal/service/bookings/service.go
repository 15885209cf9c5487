package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PadelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PadelBooking/internal/service/bookings/models"
)

// Service сервис чтения бронирований
// Созданные бронирования не изменяются, поэтому сервис только читает
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// ID, не являющийся UUID, считается несуществующим
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: malformed booking id=%q", id)
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя по email, новые первыми
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("GetUserBookings: fetching bookings for email=%s", email)

	if email == "" {
		s.logger.Warn("GetUserBookings: empty email")
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByEmail(ctx, domain.UserBookingsFilter{
		Email: email,
		Limit: req.Limit,
	})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for email=%s", len(bookings), email)
	return models.FromDomainBookingList(bookings), nil
}
