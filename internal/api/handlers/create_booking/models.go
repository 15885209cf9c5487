package create_booking

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-PadelBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PadelBooking/pkg/types"
)

var (
	errInvalidDateFormat = errors.New("invalid date format")
	errInvalidTimeFormat = errors.New("invalid time format")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CourtName string `json:"courtName"`
	Date      string `json:"date"` // "2025-10-15"
	Time      string `json:"time"` // "10:00"
	Duration  *int   `json:"duration,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CourtName   string `json:"courtName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	EndTime     string `json:"endTime"`
	Duration    int    `json:"duration"`
	BaseAmount  int64  `json:"baseAmount"`
	TaxAmount   int64  `json:"taxAmount"`
	TotalAmount int64  `json:"totalAmount"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые дата и время передаются дальше нулевыми значениями и отклоняются валидацией
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		CourtName:     r.CourtName,
		DurationHours: domain.DefaultDuration,
	}
	if r.Duration != nil {
		req.DurationHours = *r.Duration
	}

	if date := strings.TrimSpace(r.Date); date != "" {
		bookingDate, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return nil, errInvalidDateFormat
		}
		req.Date = bookingDate
	}

	if tm := strings.TrimSpace(r.Time); tm != "" {
		startTime, err := types.NewTimeStringFromString(tm)
		if err != nil {
			return nil, errInvalidTimeFormat
		}
		req.StartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message: msgBookingCreated,
		Booking: BookingResponse{
			ID:          resp.ID,
			Name:        resp.Name,
			Email:       resp.Email,
			Phone:       resp.Phone,
			CourtName:   resp.CourtName,
			Date:        resp.Date.Format(domain.DateFormat),
			Time:        resp.StartTime.String(),
			EndTime:     resp.EndTime.String(),
			Duration:    resp.DurationHours,
			BaseAmount:  resp.Price.Base,
			TaxAmount:   resp.Price.Tax,
			TotalAmount: resp.Price.Total,
			CreatedAt:   resp.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}
