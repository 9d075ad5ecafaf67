package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay минут в сутках
const MinutesPerDay = 24 * 60

var (
	ErrInvalidTimeFormat = errors.New("invalid time of day format, expected HH:MM")
	ErrTimeOutOfRange    = errors.New("time of day out of range")
)

// TimeOfDay время суток в минутах от полуночи
// Значения упорядочены и сравниваются через ==; формат HH:MM используется только на границах системы
type TimeOfDay int

// NewTimeOfDay создает TimeOfDay из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrTimeOutOfRange, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay как NewTimeOfDay, но паникует на некорректных значениях
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFromTime время суток t в его собственной зоне
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// ParseTimeOfDay разбирает "HH:MM" (час может быть одной цифрой)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return NewTimeOfDay(hour, minute)
}

// isDigits strconv.Atoi принимает знак, в HH:MM допустимы только цифры
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Minutes минут от полуночи
func (t TimeOfDay) Minutes() int { return int(t) }

// AddMinutes сдвигает время; ошибка, если результат выходит за пределы суток
func (t TimeOfDay) AddMinutes(minutes int) (TimeOfDay, error) {
	next := int(t) + minutes
	if next < 0 || next >= MinutesPerDay {
		return 0, fmt.Errorf("%w: %s%+d min", ErrTimeOutOfRange, t, minutes)
	}
	return TimeOfDay(next), nil
}

func (t TimeOfDay) IsBefore(other TimeOfDay) bool { return t < other }
func (t TimeOfDay) IsAfter(other TimeOfDay) bool  { return t > other }

// Valid проверяет, что t лежит внутри суток
func (t TimeOfDay) Valid() bool {
	return t >= 0 && int(t) < MinutesPerDay
}

// On ставит время на календарный день date в зоне date
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrTimeOutOfRange, int(t))
	}
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
