package jazzcash_callback

import (
	"context"

	"github.com/m04kA/SMC-PadelBooking/internal/service/mockpayment"
)

type PaymentService interface {
	JazzCashCallback(ctx context.Context, req *mockpayment.CallbackRequest) *mockpayment.CallbackResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
