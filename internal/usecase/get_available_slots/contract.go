package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
)

// AvailabilityService сервис расчета доступности
type AvailabilityService interface {
	Day(ctx context.Context, date time.Time) (*domain.DayAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
