package login

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
	got *users.LoginRequest
	err error
}

func (s *stubService) Login(ctx context.Context, req *users.LoginRequest) (*users.AuthResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &users.AuthResponse{
		Token: "token-1",
		User:  domain.UserProfile{ID: "u-1", Name: "Ali Khan", Email: "ali@example.com", Phone: "03001234567"},
	}, nil
}

func post(svc UserService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := post(svc, `{"emailOrPhone":"03001234567","password":"Secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "03001234567", svc.got.EmailOrPhone)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-1", resp.Token)
	assert.Equal(t, "Ali Khan", resp.User.Name)
}

func TestHandle_InvalidCredentials(t *testing.T) {
	rec := post(&stubService{err: users.ErrInvalidCredentials}, `{"emailOrPhone":"ali@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp.Error)
}

func TestHandle_OtherErrors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(&stubService{}, `not json`).Code)
	assert.Equal(t, http.StatusInternalServerError,
		post(&stubService{err: errors.New("db down")}, `{"emailOrPhone":"a@b.c","password":"x"}`).Code)
}
