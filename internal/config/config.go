package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается Validate для недопустимых значений
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса и CLI-клиента
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Auth         AuthConfig         `toml:"auth"`
	MockPayments MockPaymentsConfig `toml:"mock_payments"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
	CORS         CORSConfig         `toml:"cors"`
	BookingAPI   BookingAPIConfig   `toml:"booking_api"`
}

// ServerConfig таймауты указаны в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	MigrateOnStart  bool   `toml:"migrate_on_start"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL адрес базы в формате postgres:// для мигратора
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// TokenTTL время жизни токена
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// MockPaymentsConfig искусственные задержки mock-платежей в миллисекундах
// 0 = значение по умолчанию, отрицательное значение отключает задержку
type MockPaymentsConfig struct {
	InitiateDelayMs int `toml:"initiate_delay_ms"`
	ProcessDelayMs  int `toml:"process_delay_ms"`
}

func (m MockPaymentsConfig) InitiateDelay() time.Duration {
	return time.Duration(m.InitiateDelayMs) * time.Millisecond
}

func (m MockPaymentsConfig) ProcessDelay() time.Duration {
	return time.Duration(m.ProcessDelayMs) * time.Millisecond
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
	IdleTTL int     `toml:"idle_ttl"` // секунды
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
	AllowedMethods []string `toml:"allowed_methods"`
	AllowedHeaders []string `toml:"allowed_headers"`
}

// BookingAPIConfig настройки клиента padelctl
type BookingAPIConfig struct {
	URL         string `toml:"url"`
	Timeout     int    `toml:"timeout"` // секунды
	SessionFile string `toml:"session_file"`
}

// Load читает TOML-файл, затем применяет .env и переменные окружения
// Отсутствие .env не является ошибкой
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadClient загружает конфигурацию для CLI-клиента
// Файл необязателен, проверяется только секция booking_api
func LoadClient(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if cfg.BookingAPI.Timeout <= 0 {
		return nil, fmt.Errorf("%w: booking_api.timeout=%d", ErrInvalidConfig, cfg.BookingAPI.Timeout)
	}
	return cfg, nil
}

// Default конфигурация без файла: только значения по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	setDefaultInt(&c.Server.HTTPPort, 5000)
	setDefaultInt(&c.Server.ReadTimeout, 15)
	setDefaultInt(&c.Server.WriteTimeout, 15)
	setDefaultInt(&c.Server.IdleTimeout, 60)
	setDefaultInt(&c.Server.ShutdownTimeout, 10)

	setDefaultString(&c.Database.Host, "localhost")
	setDefaultInt(&c.Database.Port, 5432)
	setDefaultString(&c.Database.User, "postgres")
	setDefaultString(&c.Database.DBName, "padel")
	setDefaultString(&c.Database.SSLMode, "disable")
	setDefaultInt(&c.Database.MaxOpenConns, 25)
	setDefaultInt(&c.Database.MaxIdleConns, 5)
	setDefaultInt(&c.Database.ConnMaxLifetime, 300)

	setDefaultString(&c.Logs.Level, "info")

	setDefaultString(&c.Metrics.Path, "/metrics")
	setDefaultString(&c.Metrics.ServiceName, "padel_booking")

	setDefaultInt(&c.Auth.TokenTTLHours, 24)

	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 5
	}
	setDefaultInt(&c.RateLimit.Burst, 10)
	setDefaultInt(&c.RateLimit.IdleTTL, 300)

	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}

	setDefaultString(&c.BookingAPI.URL, "http://localhost:5000")
	setDefaultInt(&c.BookingAPI.Timeout, 10)
	setDefaultString(&c.BookingAPI.SessionFile, ".padel/session.json")
}

// applyEnv переопределяет секреты и PADEL_* значения из окружения
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	stringVars := map[string]*string{
		"DB_PASSWORD":     &c.Database.Password,
		"JWT_SECRET":      &c.Auth.JWTSecret,
		"PADEL_DB_HOST":   &c.Database.Host,
		"PADEL_DB_USER":   &c.Database.User,
		"PADEL_DB_NAME":   &c.Database.DBName,
		"PADEL_LOG_LEVEL": &c.Logs.Level,
		"PADEL_LOG_FILE":  &c.Logs.File,
		"PADEL_API_URL":   &c.BookingAPI.URL,
		"PADEL_SESSION":   &c.BookingAPI.SessionFile,
	}
	for key, target := range stringVars {
		if v, ok := lookup(key); ok && v != "" {
			*target = v
		}
	}

	ints := map[string]*int{
		"PADEL_HTTP_PORT": &c.Server.HTTPPort,
		"PADEL_DB_PORT":   &c.Database.Port,
	}
	for key, target := range ints {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, v)
		}
		*target = n
	}

	if v, ok := lookup("PADEL_CORS_ORIGINS"); ok && v != "" {
		c.CORS.AllowedOrigins = splitList(v)
	}
	return nil
}

// Validate проверяет итоговые значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port=%d", ErrInvalidConfig, c.Database.Port)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database.max_idle_conns=%d exceeds max_open_conns=%d",
			ErrInvalidConfig, c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is empty (set JWT_SECRET)", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_hours=%d", ErrInvalidConfig, c.Auth.TokenTTLHours)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit rps=%v burst=%d", ErrInvalidConfig, c.RateLimit.RPS, c.RateLimit.Burst)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path=%q must start with /", ErrInvalidConfig, c.Metrics.Path)
	}
	if c.BookingAPI.Timeout <= 0 {
		return fmt.Errorf("%w: booking_api.timeout=%d", ErrInvalidConfig, c.BookingAPI.Timeout)
	}
	return nil
}

func setDefaultInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setDefaultString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
