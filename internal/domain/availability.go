package domain

import (
	"time"

	"github.com/m04kA/table-reservation/pkg/types"
)

// DayStatus is the calendar summary state of a single date
type DayStatus string

const (
	DayOpen   DayStatus = "open"
	DayFull   DayStatus = "full"
	DayClosed DayStatus = "closed"
)

// DayAvailability is the derived availability of a date. Never persisted.
type DayAvailability struct {
	Date      time.Time
	IsClosed  bool
	OpenSlots []types.TimeOfDay
}

// Status derives the summary state of the day
func (d *DayAvailability) Status() DayStatus {
	switch {
	case d.IsClosed:
		return DayClosed
	case len(d.OpenSlots) == 0:
		return DayFull
	default:
		return DayOpen
	}
}

// HasSlot returns true if the slot is still open on that day
func (d *DayAvailability) HasSlot(slot types.TimeOfDay) bool {
	for _, s := range d.OpenSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// DaySummary is one entry of a month or week calendar
type DaySummary struct {
	Date      time.Time
	Status    DayStatus
	OpenSlots int
}
