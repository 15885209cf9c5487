package process_payment

import (
	"encoding/json"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/service/mockpayment"
)

// ProcessRequest HTTP request model
type ProcessRequest struct {
	PaymentMethod json.RawMessage `json:"paymentMethod"`
	Amount        json.RawMessage `json:"amount"`
	BookingID     json.RawMessage `json:"bookingId"`
}

// ProcessResponse HTTP response model
// Отсутствующие во входе поля в ответ не попадают
type ProcessResponse struct {
	Success       bool            `json:"success"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Amount        json.RawMessage `json:"amount,omitempty"`
	BookingID     json.RawMessage `json:"bookingId,omitempty"`
	TransactionID string          `json:"transactionId"`
	Mock          bool            `json:"mock"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ProcessRequest) ToServiceRequest() *mockpayment.ProcessRequest {
	return &mockpayment.ProcessRequest{
		PaymentMethod: handlers.RawString(r.PaymentMethod),
		Amount:        mockpayment.RawValue(r.Amount),
		BookingID:     mockpayment.RawValue(r.BookingID),
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *mockpayment.ProcessResponse) *ProcessResponse {
	out := &ProcessResponse{
		Success:       true,
		PaymentMethod: resp.PaymentMethod,
		TransactionID: resp.TransactionID,
		Mock:          true,
	}
	if !resp.Amount.IsEmpty() {
		out.Amount = json.RawMessage(resp.Amount)
	}
	if !resp.BookingID.IsEmpty() {
		out.BookingID = json.RawMessage(resp.BookingID)
	}
	return out
}
