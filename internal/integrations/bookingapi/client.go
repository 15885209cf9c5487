package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

const maxErrorBody = 64 << 10

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент REST API бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateBooking создает бронирование
// Повторов нет: один вызов - один запрос
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	c.log.Info("CreateBooking: court=%s, date=%s, time=%s, duration=%d", req.CourtName, req.Date, req.Time, req.Duration)

	var resp CreateBookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &resp); err != nil {
		c.log.Warn("CreateBooking: request failed: %v", err)
		return nil, err
	}

	c.log.Info("CreateBooking: created booking id=%s", resp.Booking.ID)
	return &resp.Booking, nil
}

// CheckUser проверяет, зарегистрирован ли клиент; 404 означает false без ошибки
func (c *Client) CheckUser(ctx context.Context, email, phone string) (bool, error) {
	err := c.do(ctx, http.MethodPost, "/api/bookings/check-user", &CheckUserRequest{Email: email, Phone: phone}, nil)
	if err == nil {
		return true, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, err
}

// Login входит по email или телефону и возвращает сессию
func (c *Client) Login(ctx context.Context, emailOrPhone, password string) (*domain.Session, error) {
	var session domain.Session
	if err := c.do(ctx, http.MethodPost, "/api/users/login", &LoginRequest{EmailOrPhone: emailOrPhone, Password: password}, &session); err != nil {
		c.log.Warn("Login: request failed: %v", err)
		return nil, err
	}
	if !session.IsAuthenticated() {
		return nil, fmt.Errorf("%w: login response without token or user", ErrInvalidResponse)
	}
	return &session, nil
}

// Signup регистрирует пользователя и возвращает сессию
func (c *Client) Signup(ctx context.Context, req *SignupRequest) (*domain.Session, error) {
	var session domain.Session
	if err := c.do(ctx, http.MethodPost, "/api/users/signup", req, &session); err != nil {
		c.log.Warn("Signup: request failed: %v", err)
		return nil, err
	}
	if !session.IsAuthenticated() {
		return nil, fmt.Errorf("%w: signup response without token or user", ErrInvalidResponse)
	}
	return &session, nil
}

// do выполняет JSON-запрос; out == nil означает, что тело ответа не нужно
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Message = eb.Message
		if apiErr.Message == "" {
			apiErr.Message = eb.Error
		}
	}
	return apiErr
}
