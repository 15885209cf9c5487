package jazzcash_callback

import (
	"encoding/json"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/service/mockpayment"
)

// CallbackRequest уведомление JazzCash; все поля опциональны
// Числовые значения принимаются наравне со строками
type CallbackRequest struct {
	TxnRefNo      json.RawMessage `json:"pp_TxnRefNo"`
	Amount        json.RawMessage `json:"pp_Amount"`
	BillReference json.RawMessage `json:"pp_BillReference"`
}

// CallbackResponse HTTP response model
type CallbackResponse struct {
	Success         bool   `json:"success"`
	ResponseCode    string `json:"pp_ResponseCode"`
	ResponseMessage string `json:"pp_ResponseMessage"`
	TxnRefNo        string `json:"pp_TxnRefNo"`
	Amount          string `json:"pp_Amount"`
	BillReference   string `json:"pp_BillReference"`
	Mock            bool   `json:"mock"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CallbackRequest) ToServiceRequest() *mockpayment.CallbackRequest {
	return &mockpayment.CallbackRequest{
		TxnRefNo:      handlers.TruthyString(r.TxnRefNo),
		Amount:        handlers.TruthyString(r.Amount),
		BillReference: handlers.TruthyString(r.BillReference),
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *mockpayment.CallbackResponse) *CallbackResponse {
	return &CallbackResponse{
		Success:         true,
		ResponseCode:    resp.ResponseCode,
		ResponseMessage: resp.ResponseMessage,
		TxnRefNo:        resp.TxnRefNo,
		Amount:          resp.Amount,
		BillReference:   resp.BillReference,
		Mock:            true,
	}
}
