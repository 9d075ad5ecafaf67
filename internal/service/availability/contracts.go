package availability

import (
	"context"
	"time"

	"github.com/m04kA/table-reservation/pkg/types"
)

// Gateway источник занятости слотов
type Gateway interface {
	CountBookingsBySlot(ctx context.Context, date time.Time) (map[types.TimeOfDay]int, error)
}

// ClosedDays классификатор выходных дней
type ClosedDays interface {
	IsClosed(date time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
