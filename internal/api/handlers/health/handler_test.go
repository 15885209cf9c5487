package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	h := NewHandler()
	h.now = func() time.Time {
		return time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	}

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, statusMessage, resp.Status)
	assert.Equal(t, "/api/jazzcash", resp.Routes.Payment)
	assert.Equal(t, "/api/jazzcash/test", resp.Routes.Test)
	assert.Equal(t, "/api/bookings", resp.Routes.Bookings)
	assert.Equal(t, "/api/users", resp.Routes.Users)
	assert.Equal(t, "2025-03-01T10:30:00Z", resp.Timestamp)
}
