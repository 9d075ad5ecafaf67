package get_calendar

import (
	"context"

	getCalendar "github.com/m04kA/table-reservation/internal/usecase/get_calendar"
)

type GetCalendarUseCase interface {
	Month(ctx context.Context, req *getCalendar.MonthRequest) (*getCalendar.Response, error)
	Upcoming(ctx context.Context, req *getCalendar.UpcomingRequest) (*getCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
