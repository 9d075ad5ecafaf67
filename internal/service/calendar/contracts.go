package calendar

import (
	"context"
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
)

// EventStore внешнее хранилище событий календаря (Google Calendar, PostgreSQL, память)
// Все времена передаются с явной зоной; зона хранилища по умолчанию не используется
type EventStore interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error)
	InsertEvent(ctx context.Context, event domain.CalendarEvent) (string, error)
}

// Metrics наблюдение за вызовами хранилища
type Metrics interface {
	ObserveGatewayCall(operation, result string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) ObserveGatewayCall(string, string, time.Duration) {}
