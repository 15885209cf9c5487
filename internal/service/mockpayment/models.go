package mockpayment

// Provider and operation labels
const (
	ProviderJazzCash = "jazzcash"
	ProviderGeneric  = "generic"

	OperationInitiate = "initiate"
	OperationCallback = "callback"
	OperationProcess  = "process"
)

// Fixed mock values
const (
	Currency            = "PKR"
	InitiateMessage     = "TEST MODE: JazzCash payment simulation"
	MockPaymentURL      = "/mock-jazzcash-payment"
	ResponseCodeSuccess = "000"
	CallbackMessage     = "Mock payment successful"
	DefaultAmountPaisa  = "120000" // 1200 Rs. в пайсах
	UnknownMethod       = "UNKNOWN"

	jazzCashRefPrefix = "JCMOCK"
	billRefPrefix     = "BK"
	processRefPrefix  = "MOCK-"
)

// InitiateRequest запрос на инициацию платежа JazzCash
// Amount хранится в том виде, в каком пришел (число или строка), и возвращается без изменений
type InitiateRequest struct {
	Amount      RawValue
	BookingID   string
	PhoneNumber string
}

// InitiateResponse ответ с фиктивной транзакцией
type InitiateResponse struct {
	TransactionRef string
	Amount         RawValue
	Currency       string
	PaymentURL     string
}

// CallbackRequest асинхронное уведомление провайдера (все поля опциональны)
type CallbackRequest struct {
	TxnRefNo      string
	Amount        string
	BillReference string
}

// CallbackResponse всегда успешный ответ на callback
type CallbackResponse struct {
	ResponseCode    string
	ResponseMessage string
	TxnRefNo        string
	Amount          string
	BillReference   string
}

// ProcessRequest запрос на обработку оплаты другим способом
type ProcessRequest struct {
	PaymentMethod string
	Amount        RawValue
	BookingID     RawValue
}

// ProcessResponse ответ с фиктивным идентификатором транзакции
type ProcessResponse struct {
	PaymentMethod string
	Amount        RawValue
	BookingID     RawValue
	TransactionID string
}

// RawValue непроверяемое JSON-значение, которое эхом возвращается клиенту
// Пустой RawValue означает, что поле не было передано
type RawValue []byte

// IsEmpty проверяет, что значение не передано
func (a RawValue) IsEmpty() bool {
	return len(a) == 0 || string(a) == "null"
}

// String для логов
func (a RawValue) String() string {
	if a.IsEmpty() {
		return "undefined"
	}
	return string(a)
}
