package domain

import "errors"

var (
	// ErrEventStoreRejected is wrapped by event stores when the backend refused
	// the request (auth, quota, malformed event). Anything else is treated as
	// the store being unavailable.
	ErrEventStoreRejected = errors.New("event store rejected the request")

	// ErrDateNotCovered is returned for dates outside the range of the loaded
	// holiday table: whether the shop is open on such a date is unknown.
	ErrDateNotCovered = errors.New("date is outside the holiday calendar range")
)
