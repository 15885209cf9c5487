package process_payment

import (
	"context"

	"github.com/m04kA/SMC-PadelBooking/internal/service/mockpayment"
)

type PaymentService interface {
	ProcessPayment(ctx context.Context, req *mockpayment.ProcessRequest) (*mockpayment.ProcessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
