package check_user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PadelBooking/internal/service/users"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

type stubService struct {
	exists bool
	err    error
}

func (s *stubService) CheckUser(ctx context.Context, email, phone string) (bool, error) {
	return s.exists, s.err
}

func post(svc UserService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/bookings/check-user", strings.NewReader(body)))
	return rec
}

func TestHandle_Exists(t *testing.T) {
	rec := post(&stubService{exists: true}, `{"email":"ali@example.com","phone":"03001234567"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)
}

func TestHandle_NotFound(t *testing.T) {
	rec := post(&stubService{}, `{"email":"bob@example.com"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User not found. Please signup first.", resp.Message)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(&stubService{}, ``).Code)
	assert.Equal(t, http.StatusBadRequest,
		post(&stubService{err: &users.ValidationError{Field: users.FieldEmail, Message: "Email or phone is required"}}, `{}`).Code)
	assert.Equal(t, http.StatusInternalServerError,
		post(&stubService{err: errors.New("db down")}, `{"email":"a@b.c"}`).Code)
}
