package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-PadelBooking/internal/infra/storage/user"
)

// Service регистрация, вход и проверка существования пользователей
type Service struct {
	userRepo   UserRepository
	tokens     TokenIssuer
	bcryptCost int
	newID      func() string
	logger     Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		newID:      uuid.NewString,
		logger:     logger,
	}
}

// Signup регистрирует пользователя и сразу выдает токен
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	s.logger.Info("Signup: email=%s, phone=%s", req.Email, req.Phone)

	if err := validateSignup(req); err != nil {
		s.logger.Warn("Signup: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Signup: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		ID:           s.newID(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			s.logger.Warn("Signup: user already exists: email=%s, phone=%s", req.Email, req.Phone)
			return nil, ErrUserExists
		}
		s.logger.Error("Signup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
	}

	resp, err := s.authResponse(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Signup: registered user id=%s", user.ID)
	return resp, nil
}

// Login проверяет пароль и выдает токен
// Неизвестный пользователь и неверный пароль неразличимы для клиента
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	email, phone := splitLogin(req.EmailOrPhone)
	s.logger.Info("Login: email=%s, phone=%s", email, phone)

	if (email == "" && phone == "") || req.Password == "" {
		s.logger.Warn("Login: empty credentials")
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByLogin(ctx, email, phone)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user not found: email=%s, phone=%s", email, phone)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	resp, err := s.authResponse(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: user id=%s logged in", user.ID)
	return resp, nil
}

// CheckUser проверяет, зарегистрирован ли пользователь с таким email или телефоном
func (s *Service) CheckUser(ctx context.Context, email, phone string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)
	s.logger.Info("CheckUser: email=%s, phone=%s", email, phone)

	if email == "" && phone == "" {
		return false, &ValidationError{Field: FieldEmail, Message: "Email or phone is required"}
	}

	exists, err := s.userRepo.Exists(ctx, email, phone)
	if err != nil {
		s.logger.Error("CheckUser: repository error: %v", err)
		return false, fmt.Errorf("%w: CheckUser - repository error: %v", ErrInternal, err)
	}

	return exists, nil
}

func (s *Service) authResponse(user *domain.User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, user.Phone)
	if err != nil {
		s.logger.Error("issue token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	return &AuthResponse{
		Token: token,
		User:  user.Profile(),
	}, nil
}
