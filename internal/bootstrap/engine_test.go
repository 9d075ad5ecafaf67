package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-reservation/internal/config"
	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/internal/infra/holidays"
	"github.com/m04kA/table-reservation/pkg/logger"
	"github.com/m04kA/table-reservation/pkg/slotlock"
	"github.com/m04kA/table-reservation/pkg/types"
)

const shopTOML = `
name = "Test"
timezone = "Asia/Tokyo"
open_time = "17:00"
close_time = "22:00"
`

// fixNow фиксирует текущее время движка
func fixNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = prev })
}

func testConfig(t *testing.T, lock string) *config.Config {
	t.Helper()
	fixNow(t, time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	dir := t.TempDir()
	shopPath := filepath.Join(dir, "shop-config.toml")
	require.NoError(t, os.WriteFile(shopPath, []byte(shopTOML), 0o600))

	return &config.Config{
		Shop: config.ShopFiles{ConfigFile: shopPath},
		Calendar: config.CalendarConfig{
			Backend:             config.BackendMemory,
			Timeout:             5,
			MaxParallelRequests: 2,
			UpcomingDays:        7,
		},
		Booking: config.BookingConfig{CommitLock: lock},
	}
}

func TestNew_MemoryBackend(t *testing.T) {
	engine, err := New(context.Background(), testConfig(t, config.CommitLockLocal), logger.Nop(), nil)
	require.NoError(t, err)
	defer engine.Close()

	assert.IsType(t, &slotlock.Local{}, engine.Serializer)
	assert.Equal(t, "Asia/Tokyo", engine.Shop.Location.String())
	assert.Positive(t, engine.Holidays.Len())

	// 2026-01-01 - праздник по встроенной таблице
	newYear := time.Date(2026, 1, 1, 12, 0, 0, 0, engine.Shop.Location)
	slots, err := engine.Availability.AvailableSlots(context.Background(), newYear)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// 2026-01-06 вторник
	tuesday := time.Date(2026, 1, 6, 0, 0, 0, 0, engine.Shop.Location)
	slots, err = engine.Availability.AvailableSlots(context.Background(), tuesday)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, types.MustTimeOfDay(17, 0), slots[0])
}

func TestNew_DefaultLock(t *testing.T) {
	engine, err := New(context.Background(), testConfig(t, ""), logger.Nop(), nil)
	require.NoError(t, err)
	assert.IsType(t, &slotlock.None{}, engine.Serializer)
	assert.NoError(t, engine.Close())
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig(t, config.CommitLockNone)
	cfg.Shop.ConfigFile = filepath.Join(t.TempDir(), "missing.toml")
	_, err := New(context.Background(), cfg, logger.Nop(), nil)
	assert.ErrorIs(t, err, config.ErrInvalidShopConfig)

	cfg = testConfig(t, "zookeeper")
	_, err = New(context.Background(), cfg, logger.Nop(), nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNew_ExpiredHolidayTable(t *testing.T) {
	cfg := testConfig(t, config.CommitLockNone)

	// встроенная таблица заканчивается 2027-12-31
	fixNow(t, time.Date(2028, 1, 10, 12, 0, 0, 0, time.UTC))
	_, err := New(context.Background(), cfg, logger.Nop(), nil)
	assert.ErrorIs(t, err, holidays.ErrInvalidTable)

	// последний день таблицы по времени ресторана еще допустим
	fixNow(t, time.Date(2027, 12, 31, 14, 0, 0, 0, time.UTC))
	engine, err := New(context.Background(), cfg, logger.Nop(), nil)
	require.NoError(t, err)
	defer engine.Close()

	// 2028-01-01 по Токио уже за пределами таблицы
	fixNow(t, time.Date(2027, 12, 31, 15, 0, 0, 0, time.UTC))
	_, err = New(context.Background(), cfg, logger.Nop(), nil)
	assert.ErrorIs(t, err, holidays.ErrInvalidTable)
}

func TestNew_CustomHolidayTable(t *testing.T) {
	cfg := testConfig(t, config.CommitLockNone)
	cfg.Shop.HolidaysFile = filepath.Join(t.TempDir(), "holidays.toml")
	require.NoError(t, os.WriteFile(cfg.Shop.HolidaysFile, []byte(`
version = "2028.1"
locale = "JP"
valid_from = "2028-01-01"
valid_until = "2028-12-31"

[[holiday]]
date = "2028-05-03"
name = "憲法記念日"
`), 0o600))
	fixNow(t, time.Date(2028, 4, 1, 0, 0, 0, 0, time.UTC))

	engine, err := New(context.Background(), cfg, logger.Nop(), nil)
	require.NoError(t, err)
	defer engine.Close()

	day, err := engine.Availability.Day(context.Background(), time.Date(2028, 5, 3, 0, 0, 0, 0, engine.Shop.Location))
	require.NoError(t, err)
	assert.True(t, day.IsClosed)

	_, err = engine.Availability.Day(context.Background(), time.Date(2029, 1, 4, 0, 0, 0, 0, engine.Shop.Location))
	assert.ErrorIs(t, err, domain.ErrDateNotCovered)
}
