package calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/table-reservation/internal/domain"
)

// FormatDescription формирует описание события календаря
// Строка "Capacity units" присутствует всегда; при overflow добавляется пометка
func FormatDescription(d domain.ReservationDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", d.CustomerName)
	fmt.Fprintf(&b, "Party size: %d\n", d.PartySize)
	fmt.Fprintf(&b, "Seat type: %s\n", d.SeatType)
	if d.CapacityUnits > 1 {
		fmt.Fprintf(&b, "Capacity units: %d (large party, %d %s units)\n", d.CapacityUnits, d.CapacityUnits, d.SeatType)
	} else {
		fmt.Fprintf(&b, "Capacity units: %d\n", d.CapacityUnits)
	}
	if d.Notes != nil && *d.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", *d.Notes)
	}

	return strings.TrimRight(b.String(), "\n")
}
