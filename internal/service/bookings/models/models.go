package models

import (
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	Email string `json:"email"`
	Limit uint64 `json:"limit,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
// Суммы вычисляются из длительности при каждой выдаче
type BookingResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CourtName   string `json:"courtName"`
	Date        string `json:"date"`    // "2025-10-15"
	Time        string `json:"time"`    // "10:00"
	EndTime     string `json:"endTime"` // может перейти через полночь: "21:00" + 4ч = "01:00"
	Duration    int    `json:"duration"`
	BaseAmount  int64  `json:"baseAmount"`
	TaxAmount   int64  `json:"taxAmount"`
	TotalAmount int64  `json:"totalAmount"`
	CreatedAt   string `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	price := b.Price()
	resp := &BookingResponse{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		CourtName:   b.CourtName,
		Date:        b.Date.Format(domain.DateFormat),
		Time:        b.StartTime.String(),
		Duration:    b.DurationHours,
		BaseAmount:  price.Base,
		TaxAmount:   price.Tax,
		TotalAmount: price.Total,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}

	if end, err := b.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	resp.Total = len(resp.Bookings)

	return resp
}
