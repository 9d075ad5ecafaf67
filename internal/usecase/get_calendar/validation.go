package get_calendar

import (
	"fmt"

	"github.com/m04kA/table-reservation/internal/service/availability"
)

// validateMonthRequest валидирует год и месяц
func validateMonthRequest(req *MonthRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.Year < 1 || req.Year > 9999 {
		return fmt.Errorf("%w: year must be between 1 and 9999", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	return nil
}

// resolveDays подставляет значение по умолчанию и проверяет границы
func resolveDays(req *UpcomingRequest, defaultDays int) (int, error) {
	days := defaultDays
	if req != nil && req.Days != 0 {
		days = req.Days
	}
	if days < 1 || days > availability.MaxRangeDays {
		return 0, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, availability.MaxRangeDays)
	}
	return days, nil
}
