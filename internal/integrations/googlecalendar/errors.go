package googlecalendar

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Calendar API
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrUnavailable возвращается при сетевых ошибках, 429 и 5xx
	ErrUnavailable = errors.New("googlecalendar client: api unavailable")

	// ErrCredentials возвращается, когда не удалось получить учетные данные
	ErrCredentials = errors.New("googlecalendar client: credentials error")
)
