package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
	"github.com/m04kA/SMC-SessionBooking/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Redis       RedisConfig       `toml:"redis"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	UserService UserServiceConfig `toml:"user_service"`
	Booking     BookingConfig     `toml:"booking"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL строка подключения в формате postgres:// (для миграций)
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type UserServiceConfig struct {
	URL         string `toml:"url"`
	Timeout     int    `toml:"timeout"` // секунды
	Concurrency int    `toml:"concurrency"`
}

// BookingConfig параметры мастера записи и расчета слотов
type BookingConfig struct {
	Timezone                string   `toml:"timezone"`
	HorizonDays             int      `toml:"horizon_days"`
	SlotTemplate            []string `toml:"slot_template"`
	SlotDurationMinutes     int      `toml:"slot_duration_minutes"`
	FallbackHorizonDays     int      `toml:"fallback_horizon_days"`
	FallbackSlotTemplate    []string `toml:"fallback_slot_template"`
	FallbackDurationMinutes int      `toml:"fallback_duration_minutes"`
	PaymentURL              string   `toml:"payment_url"`
	ProviderRole            string   `toml:"provider_role"`
}

// Location возвращает часовой пояс, в котором считается "сегодня"
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type RateLimitConfig struct {
	SubmitRPS   float64 `toml:"submit_rps"`
	SubmitBurst int     `toml:"submit_burst"`
}

// Load читает TOML-файл, подмешивает переменные окружения (.env поддерживается)
// и проставляет значения по умолчанию
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("USER_SERVICE_URL"); v != "" {
		cfg.UserService.URL = v
	}
	if v := os.Getenv("PAYMENT_URL"); v != "" {
		cfg.Booking.PaymentURL = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}

	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 20
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "booking:draft"
	}

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "smc-session-booking"
	}

	if cfg.UserService.Timeout == 0 {
		cfg.UserService.Timeout = 5
	}
	if cfg.UserService.Concurrency == 0 {
		cfg.UserService.Concurrency = 8
	}

	b := &cfg.Booking
	if b.Timezone == "" {
		b.Timezone = "Europe/Istanbul"
	}
	if b.HorizonDays == 0 {
		b.HorizonDays = domain.DefaultHorizonDays
	}
	if len(b.SlotTemplate) == 0 {
		b.SlotTemplate = timeStrings(domain.DefaultSlotTemplate)
	}
	if b.SlotDurationMinutes == 0 {
		b.SlotDurationMinutes = domain.DefaultSlotDurationMins
	}
	if b.FallbackHorizonDays == 0 {
		b.FallbackHorizonDays = domain.FallbackHorizonDays
	}
	if len(b.FallbackSlotTemplate) == 0 {
		b.FallbackSlotTemplate = timeStrings(domain.FallbackSlotTemplate)
	}
	if b.FallbackDurationMinutes == 0 {
		b.FallbackDurationMinutes = domain.FallbackSlotDurationMins
	}
	if b.ProviderRole == "" {
		b.ProviderRole = domain.ProviderRole
	}

	if cfg.RateLimit.SubmitRPS == 0 {
		cfg.RateLimit.SubmitRPS = 1
	}
	if cfg.RateLimit.SubmitBurst == 0 {
		cfg.RateLimit.SubmitBurst = 3
	}
}

// Validate проверяет значения, без которых сервис не может стартовать.
// Основной шаблон слотов здесь намеренно не проверяется: при ошибке в нем
// расчет доступности уходит в запасную сетку.
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis addr is required", ErrInvalidConfig)
	}
	if c.UserService.URL == "" {
		return fmt.Errorf("%w: user_service url is required", ErrInvalidConfig)
	}
	if c.Booking.PaymentURL == "" {
		return fmt.Errorf("%w: booking payment_url is required", ErrInvalidConfig)
	}
	if _, err := url.Parse(c.Booking.PaymentURL); err != nil {
		return fmt.Errorf("%w: booking payment_url: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.HorizonDays < 0 || c.Booking.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: booking horizon_days must be in 1..%d", ErrInvalidConfig, domain.MaxHorizonDays)
	}
	for _, s := range c.Booking.FallbackSlotTemplate {
		if _, err := types.NewTimeStringFromString(s); err != nil {
			return fmt.Errorf("%w: booking fallback_slot_template: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

func timeStrings(in []types.TimeString) []string {
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = t.String()
	}
	return out
}
