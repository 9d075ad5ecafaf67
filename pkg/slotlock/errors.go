package slotlock

import "errors"

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось получить до отмены контекста
	ErrLockTimeout = errors.New("slotlock: timed out waiting for slot lock")

	// ErrLockUnavailable возвращается при недоступности хранилища блокировок
	ErrLockUnavailable = errors.New("slotlock: lock backend unavailable")
)
