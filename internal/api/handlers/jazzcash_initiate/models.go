package jazzcash_initiate

import (
	"encoding/json"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/service/mockpayment"
)

// InitiateRequest HTTP request model
// Поля не валидируются: отсутствующие значения передаются дальше как есть
type InitiateRequest struct {
	Amount      json.RawMessage `json:"amount"`
	BookingID   json.RawMessage `json:"bookingId"`
	PhoneNumber json.RawMessage `json:"phoneNumber"`
}

// InitiateResponse HTTP response model
type InitiateResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Mock    bool         `json:"mock"`
	Data    InitiateData `json:"data"`
}

// InitiateData данные фиктивной транзакции
type InitiateData struct {
	TransactionRef string          `json:"transactionRef"`
	Amount         json.RawMessage `json:"amount,omitempty"`
	Currency       string          `json:"currency"`
	PaymentURL     string          `json:"paymentUrl"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *InitiateRequest) ToServiceRequest() *mockpayment.InitiateRequest {
	return &mockpayment.InitiateRequest{
		Amount:      mockpayment.RawValue(r.Amount),
		BookingID:   handlers.RawString(r.BookingID),
		PhoneNumber: handlers.RawString(r.PhoneNumber),
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *mockpayment.InitiateResponse) *InitiateResponse {
	return &InitiateResponse{
		Success: true,
		Message: mockpayment.InitiateMessage,
		Mock:    true,
		Data: InitiateData{
			TransactionRef: resp.TransactionRef,
			Amount:         json.RawMessage(resp.Amount),
			Currency:       resp.Currency,
			PaymentURL:     resp.PaymentURL,
		},
	}
}
