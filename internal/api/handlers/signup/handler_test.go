package signup

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
	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/internal/service/users"
	"github.com/m04kA/SMC-PadelBooking/pkg/logger"
)

type stubService struct {
	err error
}

func (s *stubService) Signup(ctx context.Context, req *users.SignupRequest) (*users.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &users.AuthResponse{
		Token: "token-1",
		User:  domain.UserProfile{ID: "u-1", Name: req.Name, Email: req.Email, Phone: req.Phone},
	}, nil
}

func post(svc UserService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(body)))
	return rec
}

const body = `{"name":"Ali Khan","email":"ali@example.com","phone":"03001234567","password":"Secret1","confirmPassword":"Secret1"}`

func TestHandle(t *testing.T) {
	rec := post(&stubService{}, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-1", resp.Token)
	assert.Equal(t, "ali@example.com", resp.User.Email)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "broken body", body: `{`, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidRequestBody},
		{
			name:       "validation",
			body:       body,
			err:        &users.ValidationError{Field: users.FieldConfirm, Message: "Passwords do not match"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Passwords do not match",
		},
		{name: "duplicate", body: body, err: users.ErrUserExists, wantStatus: http.StatusConflict, wantMsg: msgUserExists},
		{name: "internal", body: body, err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantMsg: msgSignupFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&stubService{err: tt.err}, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}
