package schedule

import (
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
)

// HolidayCalendar таблица государственных праздников локали ресторана
// Для даты, которую таблица не покрывает, возвращает ошибку domain.ErrDateNotCovered
type HolidayCalendar interface {
	IsPublicHoliday(date time.Time) (bool, error)
}

// ClosedDayClassifier определяет, работает ли ресторан в указанный день
type ClosedDayClassifier struct {
	cfg      *domain.ShopConfig
	holidays HolidayCalendar
}

// NewClosedDayClassifier holidays может быть nil (праздники не учитываются)
func NewClosedDayClassifier(cfg *domain.ShopConfig, holidays HolidayCalendar) *ClosedDayClassifier {
	return &ClosedDayClassifier{cfg: cfg, holidays: holidays}
}

// IsClosed true для еженедельных выходных и государственных праздников
// Дата рассматривается в зоне ресторана. Еженедельный выходной закрыт и вне диапазона таблицы праздников
func (c *ClosedDayClassifier) IsClosed(date time.Time) (bool, error) {
	day := c.cfg.StartOfDay(date)

	if c.cfg.IsWeeklyOffDay(day.Weekday()) {
		return true, nil
	}
	if c.holidays == nil {
		return false, nil
	}
	return c.holidays.IsPublicHoliday(day)
}
