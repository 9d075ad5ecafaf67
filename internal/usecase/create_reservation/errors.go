package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation общая ошибка валидации; любая *ValidationError разворачивается в нее
	ErrValidation = errors.New("reservation validation failed")

	// ErrMissingField не заполнено обязательное поле
	ErrMissingField = errors.New("required field missing")

	// ErrFieldTooLong значение поля длиннее допустимого
	ErrFieldTooLong = errors.New("field too long")

	// ErrPartySizeOutOfRange количество гостей вне диапазона 1..MaxPartySize
	ErrPartySizeOutOfRange = errors.New("party size out of range")

	// ErrUnknownSeatType тип места отсутствует в конфигурации ресторана
	ErrUnknownSeatType = errors.New("unknown seat type")

	// ErrSeatMaxExceeded гостей больше, чем допускает тип места
	ErrSeatMaxExceeded = errors.New("seat max exceeded")

	// ErrSeatMinNotMet гостей меньше, чем требует тип места
	ErrSeatMinNotMet = errors.New("seat min not met")

	// ErrSlotUnavailable слот закрыт, заполнен или не существует на эту дату
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrSlotBusy не удалось получить блокировку слота
	ErrSlotBusy = errors.New("slot is being booked concurrently, try again")
)

// ValidationError нарушение правила бронирования
// Rule - одна из sentinel ошибок пакета, Message - текст для клиента
type ValidationError struct {
	Rule    error
	Message string
}

func newValidationError(rule error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Rule}
}

// RuleName короткое имя правила для метрик и ответов API
func RuleName(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrFieldTooLong):
		return "field_too_long"
	case errors.Is(err, ErrPartySizeOutOfRange):
		return "party_size_out_of_range"
	case errors.Is(err, ErrUnknownSeatType):
		return "unknown_seat_type"
	case errors.Is(err, ErrSeatMaxExceeded):
		return "seat_max_exceeded"
	case errors.Is(err, ErrSeatMinNotMet):
		return "seat_min_not_met"
	case errors.Is(err, ErrSlotUnavailable):
		return "slot_unavailable"
	default:
		return "unknown"
	}
}
