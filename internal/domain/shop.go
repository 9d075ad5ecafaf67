package domain

import (
	"time"

	"github.com/m04kA/table-reservation/pkg/types"
)

// SeatType identifies a seating category. The set of valid values is the
// seat table of the loaded ShopConfig.
type SeatType string

func (s SeatType) String() string {
	return string(s)
}

// OverflowPolicy makes large parties consume several capacity units.
// A zero FromPartySize disables the policy.
type OverflowPolicy struct {
	FromPartySize int
	Units         int
}

// Enabled returns true if the policy applies to some party size
func (p OverflowPolicy) Enabled() bool {
	return p.FromPartySize > 0 && p.Units > 1
}

// SeatRule holds the party-size bounds and capacity accounting of a seat type
type SeatRule struct {
	Type               SeatType
	MinParty           int
	MaxParty           int
	TotalCapacityUnits int // 0 = not tracked
	Overflow           OverflowPolicy
}

// UnitsFor returns how many capacity units a party of the given size consumes
func (r SeatRule) UnitsFor(partySize int) int {
	if r.Overflow.Enabled() && partySize >= r.Overflow.FromPartySize {
		return r.Overflow.Units
	}
	return 1
}

// ShopConfig is the immutable rule set of the restaurant.
// It is built once at startup and shared read-only afterwards.
type ShopConfig struct {
	Name                   string
	Location               *time.Location
	OpenTime               types.TimeOfDay
	CloseTime              types.TimeOfDay
	SlotIntervalMinutes    int
	MaxReservationsPerSlot int
	MaxPartySize           int
	WeeklyOffDays          []time.Weekday
	SeatRules              []SeatRule
	EventSummary           string
}

// SeatRule looks up the rule of a seat type
func (c *ShopConfig) SeatRule(seatType SeatType) (SeatRule, bool) {
	for _, rule := range c.SeatRules {
		if rule.Type == seatType {
			return rule, true
		}
	}
	return SeatRule{}, false
}

// SlotInterval returns the slot granularity as a duration
func (c *ShopConfig) SlotInterval() time.Duration {
	return time.Duration(c.SlotIntervalMinutes) * time.Minute
}

// StartOfDay returns midnight of the date's calendar day in the shop zone
func (c *ShopConfig) StartOfDay(date time.Time) time.Time {
	local := date.In(c.Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.Location)
}

// IsWeeklyOffDay returns true if the weekday is a configured day off
func (c *ShopConfig) IsWeeklyOffDay(weekday time.Weekday) bool {
	for _, d := range c.WeeklyOffDays {
		if d == weekday {
			return true
		}
	}
	return false
}
