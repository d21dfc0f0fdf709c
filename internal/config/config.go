package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

// DatabaseConfig параметры подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"` // секунды
	RunMigrations   bool   `toml:"run_migrations"`                     // применять миграции при старте
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// CalendarConfig параметры построения сетки агенды
type CalendarConfig struct {
	// DefaultTimezone используется, если у филиала не указана таймзона
	DefaultTimezone string `toml:"default_timezone" validate:"required"`

	// Часы по умолчанию, когда рабочее время дня не определено
	FallbackOpeningHour int `toml:"fallback_opening_hour" validate:"min=0,max=23"`
	FallbackClosingHour int `toml:"fallback_closing_hour" validate:"min=1,max=24,gtfield=FallbackOpeningHour"`

	// Широкое окно, когда не включен режим "только рабочее время"
	WideStartHour int `toml:"wide_start_hour" validate:"min=0,max=23"`
	WideEndHour   int `toml:"wide_end_hour" validate:"min=1,max=24,gtfield=WideStartHour"`

	SlotHeightPx            int `toml:"slot_height_px" validate:"min=1"`
	MinBookingNoticeMinutes int `toml:"min_booking_notice_minutes" validate:"min=0,max=10080"`
	IndicatorRefreshSeconds int `toml:"indicator_refresh_seconds" validate:"min=1"`
}

// Default значения по умолчанию, поверх которых декодируется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "agenda-service",
		},
		Calendar: CalendarConfig{
			DefaultTimezone:         "America/Sao_Paulo",
			FallbackOpeningHour:     7,
			FallbackClosingHour:     21,
			WideStartHour:           7,
			WideEndHour:             23,
			SlotHeightPx:            28,
			MinBookingNoticeMinutes: 0,
			IndicatorRefreshSeconds: 60,
		},
	}
}

// Load читает конфигурацию из TOML файла и валидирует её
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации по тегам validate
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
