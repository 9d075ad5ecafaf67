package domain

import (
	"time"

	"github.com/m04kA/table-reservation/pkg/types"
)

// ReservationDetails is what the engine writes into a committed calendar event
type ReservationDetails struct {
	CustomerName  string
	PartySize     int
	SeatType      SeatType
	CapacityUnits int
	Notes         *string
}

// BookedEvent is a reservation committed to the external calendar.
// One event occupies one place in its slot.
type BookedEvent struct {
	ID            string
	Date          time.Time
	Slot          types.TimeOfDay
	Start         time.Time
	End           time.Time
	CustomerName  string
	PartySize     int
	SeatType      SeatType
	CapacityUnits int
	Notes         *string
}

// ConsumesMultipleUnits returns true if the overflow policy was applied
func (e *BookedEvent) ConsumesMultipleUnits() bool {
	return e.CapacityUnits > 1
}

// CalendarEvent is the record exchanged with the external event store.
// Start and End always carry an explicit location.
type CalendarEvent struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}
