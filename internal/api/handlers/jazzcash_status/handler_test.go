package jazzcash_status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/api/jazzcash/test", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, statusMessage, resp.Status)
	assert.Equal(t, "POST /api/jazzcash/initiate", resp.Endpoints.Initiate)
	assert.Equal(t, "POST /api/jazzcash/callback", resp.Endpoints.Callback)
	assert.True(t, resp.Mock)
}
