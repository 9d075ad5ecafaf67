// Package bootstrap собирает движок бронирования из конфигурации.
// Используется HTTP сервером и утилитой reservectl.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/table-reservation/internal/config"
	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/internal/infra/holidays"
	"github.com/m04kA/table-reservation/internal/infra/storage/events"
	"github.com/m04kA/table-reservation/internal/integrations/googlecalendar"
	"github.com/m04kA/table-reservation/internal/schedule"
	"github.com/m04kA/table-reservation/internal/service/availability"
	"github.com/m04kA/table-reservation/internal/service/calendar"
	"github.com/m04kA/table-reservation/pkg/slotlock"
)

// holidayWarnHorizon за сколько до конца таблицы праздников предупреждать при старте
const holidayWarnHorizon = 90 * 24 * time.Hour

// timeNow подменяется в тестах
var timeNow = time.Now

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики, которые пишут компоненты движка
type Metrics interface {
	ObserveGatewayCall(operation, result string, duration time.Duration)
}

// SlotSerializer блокировка слота на время проверки и записи
type SlotSerializer interface {
	DoSerialized(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Engine компоненты движка бронирования
type Engine struct {
	Shop         *domain.ShopConfig
	Holidays     *holidays.Table
	ClosedDays   *schedule.ClosedDayClassifier
	Gateway      *calendar.Gateway
	Availability *availability.Service
	Serializer   SlotSerializer

	closers []func() error
}

// New загружает правила ресторана и подключает хранилище событий и блокировку слотов
// metrics может быть nil
func New(ctx context.Context, cfg *config.Config, log Logger, metrics Metrics) (*Engine, error) {
	e := &Engine{}

	shop, err := config.LoadShop(cfg.Shop.ConfigFile)
	if err != nil {
		return nil, err
	}
	e.Shop = shop

	table, err := holidays.Load(cfg.Shop.HolidaysFile)
	if err != nil {
		return nil, err
	}
	e.Holidays = table
	if err := checkHolidayTable(table, shop, log); err != nil {
		return nil, err
	}
	log.Info("Holiday table loaded: locale=%s, version=%s, entries=%d, valid %s..%s",
		table.Locale, table.Version, table.Len(),
		table.ValidFrom().Format(domain.DateFormat), table.ValidUntil().Format(domain.DateFormat))

	store, err := e.newEventStore(ctx, cfg, log)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	serializer, err := e.newSerializer(ctx, cfg)
	if err != nil {
		_ = e.Close()
		return nil, err
	}
	e.Serializer = serializer

	e.ClosedDays = schedule.NewClosedDayClassifier(shop, table)
	e.Gateway = calendar.NewGateway(store, shop, time.Duration(cfg.Calendar.Timeout)*time.Second, log)
	if metrics != nil {
		e.Gateway.WithMetrics(metrics)
	}
	e.Availability = availability.NewService(shop, e.Gateway, e.ClosedDays, cfg.Calendar.MaxParallelRequests, log)

	log.Info("Engine ready: shop=%q, backend=%s, commit_lock=%s, slots %s-%s every %d min",
		shop.Name, cfg.Calendar.Backend, cfg.Booking.CommitLock, shop.OpenTime, shop.CloseTime, shop.SlotIntervalMinutes)

	return e, nil
}

// checkHolidayTable отклоняет таблицу, которая уже не покрывает сегодняшний день ресторана
func checkHolidayTable(table *holidays.Table, shop *domain.ShopConfig, log Logger) error {
	today := shop.StartOfDay(timeNow())
	// Границы таблицы хранятся как даты UTC, сравниваем календарные даты
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	if todayDate.After(table.ValidUntil()) {
		return fmt.Errorf("%w: table %s %s expired on %s, closed days after it are unknown",
			holidays.ErrInvalidTable, table.Locale, table.Version, table.ValidUntil().Format(domain.DateFormat))
	}
	if todayDate.Before(table.ValidFrom()) {
		return fmt.Errorf("%w: table %s %s starts on %s, after today %s",
			holidays.ErrInvalidTable, table.Locale, table.Version,
			table.ValidFrom().Format(domain.DateFormat), todayDate.Format(domain.DateFormat))
	}
	if table.ValidUntil().Sub(todayDate) < holidayWarnHorizon {
		log.Warn("Holiday table %s %s ends on %s: dates after it will be rejected, update shop.holidays_file",
			table.Locale, table.Version, table.ValidUntil().Format(domain.DateFormat))
	}
	return nil
}

// Close освобождает соединения с хранилищами
func (e *Engine) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

func (e *Engine) newEventStore(ctx context.Context, cfg *config.Config, log Logger) (calendar.EventStore, error) {
	switch cfg.Calendar.Backend {
	case config.BackendGoogle:
		httpClient, err := googlecalendar.NewHTTPClient(ctx, cfg.Calendar.CredentialsFile, time.Duration(cfg.Calendar.Timeout)*time.Second)
		if err != nil {
			return nil, err
		}
		log.Info("Event store: Google Calendar (calendar_id=%s)", cfg.Calendar.CalendarID)
		return googlecalendar.NewClient(cfg.Calendar.BaseURL, cfg.Calendar.CalendarID, e.Shop.Location, httpClient, log), nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		e.closers = append(e.closers, db.Close)

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}

		repo := events.NewRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		log.Info("Event store: PostgreSQL (host=%s, port=%d, db=%s)", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return repo, nil

	case config.BackendMemory:
		log.Warn("Event store: in-memory, reservations are lost on restart")
		return events.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("%w: unsupported calendar.backend %q", config.ErrInvalidConfig, cfg.Calendar.Backend)
	}
}

func (e *Engine) newSerializer(ctx context.Context, cfg *config.Config) (SlotSerializer, error) {
	switch cfg.Booking.CommitLock {
	case config.CommitLockNone, "":
		return slotlock.NewNone(), nil

	case config.CommitLockLocal:
		return slotlock.NewLocal(), nil

	case config.CommitLockRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		e.closers = append(e.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("%w: ping redis %s: %v", slotlock.ErrLockUnavailable, cfg.Redis.Addr, err)
		}
		return slotlock.NewRedis(client, time.Duration(cfg.Booking.LockTTL)*time.Second), nil

	default:
		return nil, fmt.Errorf("%w: unsupported booking.commit_lock %q", config.ErrInvalidConfig, cfg.Booking.CommitLock)
	}
}
