// Package schedule maps calendar dates onto program weeks and weekday slots.
package schedule

import (
	"time"
)

// DateLayout is the wire format for dates everywhere in liftday.
const DateLayout = "2006-01-02"

// Status describes where a date falls relative to the program window.
type Status int

const (
	// Active means the date is inside the program window.
	Active Status = iota
	// BeforeStart means the date precedes day one.
	BeforeStart
	// Completed means the date is past the last program day.
	Completed
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case BeforeStart:
		return "before_start"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Position is a date resolved into program coordinates.
type Position struct {
	// Week is the 1-indexed program week (1-12 for the default cycle).
	Week int
	// Weekday is the 0-6 daily slot, 0 being the start date's weekday.
	Weekday int
	// Offset is whole days elapsed since the start date.
	Offset int
}

// Schedule anchors the program window on the calendar.
type Schedule struct {
	// Start is midnight UTC of program day one.
	Start time.Time
	// Weeks is the program length.
	Weeks int
}

// Default returns the standard cycle: 12 weeks starting Sunday 2024-12-29.
func Default() Schedule {
	return Schedule{
		Start: time.Date(2024, time.December, 29, 0, 0, 0, 0, time.UTC),
		Weeks: 12,
	}
}

// Days returns the total number of program days.
func (s Schedule) Days() int {
	return s.Weeks * 7
}

// Resolve maps a calendar date to a program position. The returned Position
// is only meaningful when the status is Active, except Offset which is always
// set.
func (s Schedule) Resolve(date time.Time) (Position, Status) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Sub(s.Start).Hours() / 24)

	pos := Position{Offset: offset}
	switch {
	case offset < 0:
		return pos, BeforeStart
	case offset >= s.Days():
		return pos, Completed
	}
	pos.Week = offset/7 + 1
	pos.Weekday = offset % 7
	return pos, Active
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
