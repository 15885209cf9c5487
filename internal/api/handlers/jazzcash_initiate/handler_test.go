package jazzcash_initiate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/internal/service/mockpayment"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

type abandonedService struct{}

func (abandonedService) InitiateJazzCash(ctx context.Context, req *mockpayment.InitiateRequest) (*mockpayment.InitiateResponse, error) {
	return nil, context.Canceled
}

func newHandler() *Handler {
	svc := mockpayment.NewService(-1, -1, nil, logger.Nop())
	return NewHandler(svc, logger.Nop())
}

func TestHandle_EchoesAmount(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAmount string
	}{
		{name: "number amount", body: `{"amount":2400,"bookingId":"BK1","phoneNumber":"03001234567"}`, wantAmount: "2400"},
		{name: "string amount", body: `{"amount":"2400"}`, wantAmount: `"2400"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/jazzcash/initiate", strings.NewReader(tt.body))

			newHandler().Handle(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp InitiateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.True(t, resp.Mock)
			assert.Equal(t, mockpayment.InitiateMessage, resp.Message)
			assert.True(t, strings.HasPrefix(resp.Data.TransactionRef, "JCMOCK"))
			assert.JSONEq(t, tt.wantAmount, string(resp.Data.Amount))
			assert.Equal(t, "PKR", resp.Data.Currency)
			assert.Equal(t, "/mock-jazzcash-payment", resp.Data.PaymentURL)
		})
	}
}

func TestHandle_MissingAmountIsOmitted(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jazzcash/initiate", strings.NewReader(`{}`))

	newHandler().Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	_, hasAmount := raw["data"]["amount"]
	assert.False(t, hasAmount)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jazzcash/initiate", strings.NewReader(`{"amount":`))

	newHandler().Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_AbandonedRequestWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jazzcash/initiate", strings.NewReader(`{}`))

	NewHandler(abandonedService{}, logger.Nop()).Handle(rec, req)

	assert.Empty(t, rec.Body.String())
}
