package availability

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном годе или месяце
	ErrInvalidMonth = errors.New("availability: invalid year or month")

	// ErrInvalidRange возвращается при некорректной длине диапазона дней
	ErrInvalidRange = errors.New("availability: invalid range")
)
