package get_calendar

import (
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
)

// MonthRequest модель запроса календаря на месяц
type MonthRequest struct {
	Year  int
	Month int // 1..12
}

// UpcomingRequest модель запроса ближайших дней
type UpcomingRequest struct {
	Days int // 0 - значение по умолчанию
}

// Response модель ответа со статусами дней в хронологическом порядке
type Response struct {
	From time.Time
	To   time.Time // Последний день включительно
	Days []domain.DaySummary
}
