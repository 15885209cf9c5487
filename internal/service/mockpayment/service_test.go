package mockpayment

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type recordingDelayer struct {
	mu     sync.Mutex
	delays []time.Duration
	err    error
}

func (d *recordingDelayer) Sleep(ctx context.Context, delay time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delays = append(d.delays, delay)
	return d.err
}

type countingMetrics struct {
	mu    sync.Mutex
	calls map[string]int
}

func (m *countingMetrics) IncMockTransaction(provider, operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[provider+"/"+operation]++
}

func newTestService(t *testing.T) (*Service, *fixedClock, *recordingDelayer, *countingMetrics) {
	t.Helper()

	clock := &fixedClock{now: time.UnixMilli(1753862400000)}
	delayer := &recordingDelayer{}
	metrics := &countingMetrics{}

	svc := NewService(0, 0, metrics, logger.Nop())
	svc.clock = clock
	svc.delayer = delayer
	svc.randomInt = func(n int) int { return 4242 }

	return svc, clock, delayer, metrics
}

func TestInitiateJazzCash(t *testing.T) {
	svc, _, delayer, metrics := newTestService(t)

	resp, err := svc.InitiateJazzCash(context.Background(), &InitiateRequest{
		Amount:      RawValue("2400"),
		BookingID:   "BK123456",
		PhoneNumber: "03001234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "JCMOCK1753862400000", resp.TransactionRef)
	assert.Equal(t, RawValue("2400"), resp.Amount)
	assert.Equal(t, "PKR", resp.Currency)
	assert.Equal(t, "/mock-jazzcash-payment", resp.PaymentURL)
	assert.Equal(t, []time.Duration{DefaultInitiateDelay}, delayer.delays)
	assert.Equal(t, 1, metrics.calls["jazzcash/initiate"])
}

func TestInitiateJazzCash_IsNotIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	req := &InitiateRequest{Amount: RawValue("1200"), BookingID: "BK1", PhoneNumber: "03001234567"}

	first, err := svc.InitiateJazzCash(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.InitiateJazzCash(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.TransactionRef, second.TransactionRef)
	assert.Equal(t, "JCMOCK1753862400001", second.TransactionRef)
}

func TestInitiateJazzCash_MissingAmountIsEchoedAsMissing(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	resp, err := svc.InitiateJazzCash(context.Background(), &InitiateRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Amount.IsEmpty())
	assert.True(t, strings.HasPrefix(resp.TransactionRef, "JCMOCK"))
}

func TestInitiateJazzCash_CancelledDuringDelay(t *testing.T) {
	svc, _, delayer, metrics := newTestService(t)
	delayer.err = context.Canceled

	resp, err := svc.InitiateJazzCash(context.Background(), &InitiateRequest{BookingID: "BK1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, resp)
	assert.Zero(t, metrics.calls["jazzcash/initiate"])
}

func TestInitiateJazzCash_RealDelay(t *testing.T) {
	svc := NewService(30*time.Millisecond, 0, nil, logger.Nop())

	start := time.Now()
	_, err := svc.InitiateJazzCash(context.Background(), &InitiateRequest{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestJazzCashCallback_Defaults(t *testing.T) {
	svc, _, delayer, metrics := newTestService(t)

	resp := svc.JazzCashCallback(context.Background(), &CallbackRequest{})

	assert.Equal(t, "000", resp.ResponseCode)
	assert.Equal(t, "Mock payment successful", resp.ResponseMessage)
	assert.Equal(t, "JCMOCK1753862400000", resp.TxnRefNo)
	assert.Equal(t, "120000", resp.Amount)
	assert.Equal(t, "BK4242", resp.BillReference)
	assert.Empty(t, delayer.delays)
	assert.Equal(t, 1, metrics.calls["jazzcash/callback"])
}

func TestJazzCashCallback_EchoesFields(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	resp := svc.JazzCashCallback(context.Background(), &CallbackRequest{
		TxnRefNo:      "JCMOCK1",
		Amount:        "240000",
		BillReference: "BK999",
	})

	assert.Equal(t, "000", resp.ResponseCode)
	assert.Equal(t, "JCMOCK1", resp.TxnRefNo)
	assert.Equal(t, "240000", resp.Amount)
	assert.Equal(t, "BK999", resp.BillReference)
}

func TestProcessPayment(t *testing.T) {
	svc, _, delayer, metrics := newTestService(t)

	resp, err := svc.ProcessPayment(context.Background(), &ProcessRequest{
		PaymentMethod: "easypaisa",
		Amount:        RawValue("3600"),
		BookingID:     RawValue(`"BK1"`),
	})
	require.NoError(t, err)

	assert.Equal(t, "MOCK-EASYPAISA-1753862400000", resp.TransactionID)
	assert.Equal(t, "easypaisa", resp.PaymentMethod)
	assert.Equal(t, RawValue("3600"), resp.Amount)
	assert.Equal(t, RawValue(`"BK1"`), resp.BookingID)
	assert.Equal(t, []time.Duration{DefaultProcessDelay}, delayer.delays)
	assert.Equal(t, 1, metrics.calls["generic/process"])
}

func TestProcessPayment_MissingMethod(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	resp, err := svc.ProcessPayment(context.Background(), &ProcessRequest{})
	require.NoError(t, err)
	assert.Equal(t, "MOCK-UNKNOWN-1753862400000", resp.TransactionID)
}

func TestNextMillis_ConcurrentCallsAreDistinct(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	const n = 50
	results := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.nextMillis()
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]struct{}, n)
	for v := range results {
		seen[v] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestTimerDelayer(t *testing.T) {
	d := TimerDelayer{}
	assert.NoError(t, d.Sleep(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Sleep(ctx, time.Hour), context.Canceled)
}
