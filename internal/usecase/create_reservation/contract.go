package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/pkg/types"
)

// AvailabilityService источник свободных слотов дня
type AvailabilityService interface {
	AvailableSlots(ctx context.Context, date time.Time) ([]types.TimeOfDay, error)
}

// CalendarGateway запись бронирования во внешний календарь
type CalendarGateway interface {
	CommitBooking(ctx context.Context, date time.Time, slot types.TimeOfDay, details domain.ReservationDetails) (*domain.BookedEvent, error)
}

// SlotSerializer выполняет повторную проверку слота и запись под блокировкой ключа слота
type SlotSerializer interface {
	DoSerialized(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Metrics счетчики результатов бронирования
type Metrics interface {
	IncReservationCommitted(seatType string)
	IncReservationRejected(rule string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncReservationCommitted(string) {}
func (noopMetrics) IncReservationRejected(string)  {}
