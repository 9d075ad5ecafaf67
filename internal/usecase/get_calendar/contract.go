package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
)

// AvailabilityService сервис расчета доступности
type AvailabilityService interface {
	MonthSummary(ctx context.Context, year int, month time.Month) ([]domain.DaySummary, error)
	RangeSummary(ctx context.Context, from time.Time, days int) ([]domain.DaySummary, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
