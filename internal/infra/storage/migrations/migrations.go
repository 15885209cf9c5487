package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var FS embed.FS

const sourceDir = "sql"

// Up применяет все новые миграции; отсутствие изменений ошибкой не считается
// Мигратор открывает собственное соединение по databaseURL и закрывает его по завершении
func Up(databaseURL string) error {
	src, err := iofs.New(FS, sourceDir)
	if err != nil {
		return fmt.Errorf("migrations: source driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("migrations: create migrator: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations: up: %w", err)
	}
	return nil
}
