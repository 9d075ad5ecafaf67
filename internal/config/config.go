package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректной конфигурации приложения
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Поддерживаемые хранилища событий календаря
const (
	BackendGoogle   = "google"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Режимы сериализации записи бронирований
const (
	CommitLockNone  = "none"
	CommitLockLocal = "local"
	CommitLockRedis = "redis"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Shop     ShopFiles      `toml:"shop"`
	Calendar CalendarConfig `toml:"calendar"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// ShopFiles пути к файлам правил ресторана
type ShopFiles struct {
	ConfigFile   string `toml:"config_file"`
	HolidaysFile string `toml:"holidays_file"` // пусто = встроенная таблица праздников Японии
}

type CalendarConfig struct {
	Backend             string `toml:"backend"`
	CalendarID          string `toml:"calendar_id"`
	CredentialsFile     string `toml:"credentials_file"`
	BaseURL             string `toml:"base_url"`
	Timeout             int    `toml:"timeout"` // секунды, на один вызов хранилища
	MaxParallelRequests int    `toml:"max_parallel_requests"`
	UpcomingDays        int    `toml:"upcoming_days"`
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

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type BookingConfig struct {
	CommitLock string `toml:"commit_lock"`
	LockTTL    int    `toml:"lock_ttl"` // секунды
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает TOML-конфигурацию и секреты из окружения
// Файл .env рядом с конфигом загружается, если существует
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: load .env: %v", ErrInvalidConfig, err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "table_reservation",
		},
		Shop: ShopFiles{ConfigFile: "shop-config.toml"},
		Calendar: CalendarConfig{
			Backend:             BackendGoogle,
			BaseURL:             "https://www.googleapis.com/calendar/v3",
			Timeout:             10,
			MaxParallelRequests: 4,
			UpcomingDays:        7,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Booking: BookingConfig{
			CommitLock: CommitLockNone,
			LockTTL:    30,
		},
	}
}

// applyEnv переопределяет секреты значениями из окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("GOOGLE_CALENDAR_ID"); v != "" {
		cfg.Calendar.CalendarID = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS_FILE"); v != "" {
		cfg.Calendar.CredentialsFile = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}

func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Shop.ConfigFile == "" {
		return fmt.Errorf("%w: shop.config_file is required", ErrInvalidConfig)
	}
	if c.Calendar.Timeout <= 0 {
		return fmt.Errorf("%w: calendar.timeout must be positive", ErrInvalidConfig)
	}
	if c.Calendar.MaxParallelRequests <= 0 {
		return fmt.Errorf("%w: calendar.max_parallel_requests must be positive", ErrInvalidConfig)
	}
	if c.Calendar.UpcomingDays <= 0 {
		return fmt.Errorf("%w: calendar.upcoming_days must be positive", ErrInvalidConfig)
	}

	switch c.Calendar.Backend {
	case BackendGoogle:
		if c.Calendar.CalendarID == "" {
			return fmt.Errorf("%w: calendar.calendar_id (or GOOGLE_CALENDAR_ID) is required for google backend", ErrInvalidConfig)
		}
		// Пустой credentials_file - Application Default Credentials (GOOGLE_APPLICATION_CREDENTIALS, metadata server)
	case BackendPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres backend", ErrInvalidConfig)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unsupported calendar.backend %q", ErrInvalidConfig, c.Calendar.Backend)
	}

	switch c.Booking.CommitLock {
	case CommitLockNone, CommitLockLocal:
	case CommitLockRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis commit lock", ErrInvalidConfig)
		}
		// Под блокировкой выполняются два вызова хранилища (повторная проверка и запись),
		// каждый ограничен calendar.timeout
		if c.Booking.LockTTL <= 2*c.Calendar.Timeout {
			return fmt.Errorf("%w: booking.lock_ttl (%ds) must exceed twice calendar.timeout (%ds)",
				ErrInvalidConfig, c.Booking.LockTTL, c.Calendar.Timeout)
		}
	default:
		return fmt.Errorf("%w: unsupported booking.commit_lock %q", ErrInvalidConfig, c.Booking.CommitLock)
	}

	return nil
}
