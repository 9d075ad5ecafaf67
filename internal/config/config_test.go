package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MemoryBackend(t *testing.T) {
	path := writeFile(t, "config.toml", `
[server]
http_port = 9090

[shop]
config_file = "shop-config.toml"

[calendar]
backend = "memory"
max_parallel_requests = 8

[booking]
commit_lock = "local"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, BackendMemory, cfg.Calendar.Backend)
	assert.Equal(t, 8, cfg.Calendar.MaxParallelRequests)
	assert.Equal(t, 10, cfg.Calendar.Timeout)
	assert.Equal(t, 7, cfg.Calendar.UpcomingDays)
	assert.Equal(t, CommitLockLocal, cfg.Booking.CommitLock)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_GoogleBackendFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_CALENDAR_ID", "shop@group.calendar.google.com")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/secrets/credentials.json")

	path := writeFile(t, "config.toml", `
[calendar]
backend = "google"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shop@group.calendar.google.com", cfg.Calendar.CalendarID)
	assert.Equal(t, "/secrets/credentials.json", cfg.Calendar.CredentialsFile)
}

func TestValidate_GoogleDefaultCredentials(t *testing.T) {
	cfg := defaults()
	cfg.Calendar.CalendarID = "shop@group.calendar.google.com"

	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Calendar.CredentialsFile)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "google without calendar id", modify: func(c *Config) { c.Calendar.CredentialsFile = "x.json" }},
		{name: "postgres without host", modify: func(c *Config) { c.Calendar.Backend = BackendPostgres }},
		{name: "unknown backend", modify: func(c *Config) { c.Calendar.Backend = "ical" }},
		{name: "redis lock without addr", modify: func(c *Config) {
			c.Calendar.Backend = BackendMemory
			c.Booking.CommitLock = CommitLockRedis
		}},
		{name: "redis lock ttl shorter than locked section", modify: func(c *Config) {
			c.Calendar.Backend = BackendMemory
			c.Booking.CommitLock = CommitLockRedis
			c.Redis.Addr = "localhost:6379"
			c.Calendar.Timeout = 10
			c.Booking.LockTTL = 1
		}},
		{name: "redis lock ttl equal to two calls", modify: func(c *Config) {
			c.Calendar.Backend = BackendMemory
			c.Booking.CommitLock = CommitLockRedis
			c.Redis.Addr = "localhost:6379"
			c.Calendar.Timeout = 10
			c.Booking.LockTTL = 20
		}},
		{name: "unknown lock", modify: func(c *Config) {
			c.Calendar.Backend = BackendMemory
			c.Booking.CommitLock = "mutex"
		}},
		{name: "zero timeout", modify: func(c *Config) {
			c.Calendar.Backend = BackendMemory
			c.Calendar.Timeout = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_RedisLockDefaults(t *testing.T) {
	cfg := defaults()
	cfg.Calendar.Backend = BackendMemory
	cfg.Booking.CommitLock = CommitLockRedis
	cfg.Redis.Addr = "localhost:6379"

	require.NoError(t, cfg.Validate())
	assert.Greater(t, cfg.Booking.LockTTL, 2*cfg.Calendar.Timeout)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "secret", DBName: "reservations", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=reservations sslmode=disable", d.DSN())
}
