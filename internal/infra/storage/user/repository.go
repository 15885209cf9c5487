package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
	"github.com/m04kA/SMC-PadelBooking/pkg/psqlbuilder"
)

const (
	tableUsers = "users"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
	uniqueViolation = "23505"
)

// Repository репозиторий пользователей
// email хранится в нижнем регистре, телефон - только цифрами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет нового пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := psqlbuilder.Insert(tableUsers).
		Columns("id", "name", "email", "phone", "password_hash").
		Values(user.ID, user.Name, user.Email, user.Phone, user.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if isUniqueViolation(err) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	user.CreatedAt = createdAt.Time

	return user, nil
}

// GetByLogin ищет пользователя по email или телефону
func (r *Repository) GetByLogin(ctx context.Context, email, phone string) (*domain.User, error) {
	cond := loginCondition(email, phone)
	if cond == nil {
		return nil, ErrUserNotFound
	}

	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "password_hash", "created_at").
		From(tableUsers).
		Where(cond).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLogin - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.User
	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLogin - scan user: %v", ErrScanRow, err)
	}
	user.CreatedAt = createdAt.Time

	return &user, nil
}

// Exists проверяет, зарегистрирован ли пользователь с таким email или телефоном
func (r *Repository) Exists(ctx context.Context, email, phone string) (bool, error) {
	cond := loginCondition(email, phone)
	if cond == nil {
		return false, nil
	}

	query, args, err := psqlbuilder.Select("1").
		From(tableUsers).
		Where(cond).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// loginCondition строит условие поиска по непустым полям
func loginCondition(email, phone string) squirrel.Sqlizer {
	var or squirrel.Or
	if email != "" {
		or = append(or, squirrel.Eq{"email": email})
	}
	if phone != "" {
		or = append(or, squirrel.Eq{"phone": phone})
	}
	if len(or) == 0 {
		return nil
	}
	return or
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
