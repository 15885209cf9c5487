package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/m04kA/SMC-PadelBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Memory хранит сессию в памяти процесса
type Memory struct {
	mu      sync.RWMutex
	current *domain.Session
}

// NewMemory создает хранилище с начальной сессией (nil - без сессии)
func NewMemory(initial *domain.Session) *Memory {
	return &Memory{current: initial}
}

// Current возвращает текущую сессию или nil
func (m *Memory) Current() *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Save заменяет текущую сессию
func (m *Memory) Save(s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
	return nil
}

// Clear завершает сессию
func (m *Memory) Clear() error {
	return m.Save(nil)
}

// FileStore хранит сессию в JSON-файле
// Нечитаемый файл считается отсутствием сессии и удаляется
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger Logger
}

// NewFileStore создает хранилище сессии в файле path
func NewFileStore(path string, logger Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Current читает сессию с диска; любая ошибка чтения означает "нет сессии"
func (f *FileStore) Current() *domain.Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("session: failed to read %s: %v", f.path, err)
		}
		return nil
	}

	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil || !s.IsAuthenticated() {
		f.logger.Warn("session: discarding unreadable session file %s", f.path)
		if rmErr := os.Remove(f.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			f.logger.Error("session: failed to remove %s: %v", f.path, rmErr)
		}
		return nil
	}

	return &s
}

// Save записывает сессию атомарно через временный файл
func (f *FileStore) Save(s *domain.Session) error {
	if s == nil {
		return f.Clear()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("session: replace: %w", err)
	}
	return nil
}

// Clear удаляет файл сессии
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove: %w", err)
	}
	return nil
}
