package mockpayment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"
)

// Default artificial delays
const (
	DefaultInitiateDelay = 800 * time.Millisecond
	DefaultProcessDelay  = 500 * time.Millisecond
)

// Service имитация платежного провайдера
// Сервис не хранит состояние между запросами, кроме последнего выданного значения
// миллисекунд: оно нужно, чтобы два запроса в одну миллисекунду получили разные ссылки
type Service struct {
	initiateDelay time.Duration
	processDelay  time.Duration
	clock         Clock
	delayer       Delayer
	randomInt     func(n int) int
	lastMillis    atomic.Int64
	metrics       Metrics
	logger        Logger
}

// NewService создает новый экземпляр сервиса
// Нулевые задержки заменяются значениями по умолчанию, отрицательные отключают задержку
func NewService(initiateDelay, processDelay time.Duration, metrics Metrics, logger Logger) *Service {
	if initiateDelay == 0 {
		initiateDelay = DefaultInitiateDelay
	}
	if processDelay == 0 {
		processDelay = DefaultProcessDelay
	}

	return &Service{
		initiateDelay: initiateDelay,
		processDelay:  processDelay,
		clock:         RealClock{},
		delayer:       TimerDelayer{},
		randomInt:     rand.IntN,
		metrics:       metrics,
		logger:        logger,
	}
}

// InitiateJazzCash имитирует инициацию платежа JazzCash
// Ответ приходит не раньше initiateDelay; повторный вызов с теми же данными дает новую ссылку
func (s *Service) InitiateJazzCash(ctx context.Context, req *InitiateRequest) (*InitiateResponse, error) {
	s.logger.Info("InitiateJazzCash: [MOCK] amount=%s, booking=%s, phone=%s, date=%s",
		req.Amount, req.BookingID, req.PhoneNumber, s.clock.Now().UTC().Format(time.RFC3339))

	if err := s.delayer.Sleep(ctx, s.initiateDelay); err != nil {
		s.logger.Warn("InitiateJazzCash: request abandoned: booking=%s: %v", req.BookingID, err)
		return nil, err
	}

	ref := fmt.Sprintf("%s%d", jazzCashRefPrefix, s.nextMillis())
	s.count(ProviderJazzCash, OperationInitiate)

	s.logger.Info("InitiateJazzCash: issued transaction_ref=%s, booking=%s", ref, req.BookingID)
	return &InitiateResponse{
		TransactionRef: ref,
		Amount:         req.Amount,
		Currency:       Currency,
		PaymentURL:     MockPaymentURL,
	}, nil
}

// JazzCashCallback имитирует обработку уведомления JazzCash
// Подпись не проверяется; отсутствующие поля заполняются значениями-заглушками
func (s *Service) JazzCashCallback(_ context.Context, req *CallbackRequest) *CallbackResponse {
	s.logger.Info("JazzCashCallback: [MOCK] received txn_ref=%q, amount=%q, bill_ref=%q",
		req.TxnRefNo, req.Amount, req.BillReference)

	resp := &CallbackResponse{
		ResponseCode:    ResponseCodeSuccess,
		ResponseMessage: CallbackMessage,
		TxnRefNo:        req.TxnRefNo,
		Amount:          req.Amount,
		BillReference:   req.BillReference,
	}

	if resp.TxnRefNo == "" {
		resp.TxnRefNo = fmt.Sprintf("%s%d", jazzCashRefPrefix, s.nextMillis())
	}
	if resp.Amount == "" {
		resp.Amount = DefaultAmountPaisa
	}
	if resp.BillReference == "" {
		resp.BillReference = fmt.Sprintf("%s%d", billRefPrefix, s.randomInt(1000000))
	}

	s.count(ProviderJazzCash, OperationCallback)
	return resp
}

// ProcessPayment имитирует оплату картой, EasyPaisa или наличными
func (s *Service) ProcessPayment(ctx context.Context, req *ProcessRequest) (*ProcessResponse, error) {
	s.logger.Info("ProcessPayment: [MOCK] processing method=%s for booking=%s", req.PaymentMethod, req.BookingID)

	if err := s.delayer.Sleep(ctx, s.processDelay); err != nil {
		s.logger.Warn("ProcessPayment: request abandoned: booking=%s: %v", req.BookingID, err)
		return nil, err
	}

	method := strings.ToUpper(strings.TrimSpace(req.PaymentMethod))
	if method == "" {
		method = UnknownMethod
	}

	txID := fmt.Sprintf("%s%s-%d", processRefPrefix, method, s.nextMillis())
	s.count(ProviderGeneric, OperationProcess)

	s.logger.Info("ProcessPayment: issued transaction_id=%s", txID)
	return &ProcessResponse{
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		BookingID:     req.BookingID,
		TransactionID: txID,
	}, nil
}

// nextMillis возвращает текущее время в миллисекундах, строго большее предыдущего выданного
func (s *Service) nextMillis() int64 {
	now := s.clock.Now().UnixMilli()
	for {
		last := s.lastMillis.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if s.lastMillis.CompareAndSwap(last, next) {
			return next
		}
	}
}

func (s *Service) count(provider, operation string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncMockTransaction(provider, operation)
}
