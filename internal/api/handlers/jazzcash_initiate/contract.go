package jazzcash_initiate

import (
	"context"

	"github.com/m04kA/SMC-PadelBooking/internal/service/mockpayment"
)

type PaymentService interface {
	InitiateJazzCash(ctx context.Context, req *mockpayment.InitiateRequest) (*mockpayment.InitiateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
