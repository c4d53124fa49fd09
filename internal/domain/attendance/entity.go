package attendance

import (
	"time"
)

// Status is the derived state of a day's record.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"

	// StatusAbsent is only ever written by system synthesis for days with no
	// check-in; a live check-in can never produce it.
	StatusAbsent Status = "absent"
)

type WorkType string

const (
	WorkTypeOffice WorkType = "office"
	WorkTypeRemote WorkType = "remote"
)

// Attendance is one record per employee per calendar day, keyed by the day of
// CheckIn. CheckOut is nil while the record is open.
type Attendance struct {
	ID         string
	EmployeeID string
	CheckIn    time.Time
	CheckOut   *time.Time
	Status     Status
	WorkType   WorkType
	BreakStart *time.Time
	BreakEnd   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOpen reports whether the record has not been checked out yet.
func (a Attendance) IsOpen() bool {
	return a.CheckOut == nil
}

// IsOnBreak reports whether a break has been started and not ended.
func (a Attendance) IsOnBreak() bool {
	return a.BreakStart != nil && a.BreakEnd == nil
}

// DayOf truncates a timestamp to its calendar day in its own location. All
// "today" comparisons and the per-day uniqueness invariant go through this
// one function.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MinutesOfDay returns t's time of day as minutes since midnight, for
// comparison against policy clock values.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
