package domain

import "time"

// Default shop configuration values
const (
	DefaultSlotIntervalMinutes    = 30
	DefaultMaxReservationsPerSlot = 5
	DefaultMaxPartySize           = 8
	DefaultCounterMaxGuests       = 2
	DefaultTableMinGuests         = 3
	DefaultTableOverflowFrom      = 5
	DefaultTableOverflowUnits     = 2
	DefaultWeeklyOffDay           = time.Sunday
	DefaultTimezone               = "Asia/Tokyo"
)

// Business validation constants
const (
	MinPartySize           = 1
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 240
	MaxReservationsPerSlot = 100
	MaxCustomerNameLength  = 100
	MaxNotesLength         = 500
	DaysInWeek             = 7
)

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = time.RFC3339
)

// Built-in seat types
const (
	SeatCounter SeatType = "counter"
	SeatTable   SeatType = "table"
)
