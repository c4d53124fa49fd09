package attendance

import "errors"

// Attendance domain errors. Each maps to a machine-readable reason at the
// HTTP boundary; clients must re-fetch state rather than retry.
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrAlreadyOnBreak    = errors.New("already on break")
	ErrNotOnBreak        = errors.New("not currently on break")

	ErrNoPendingCheckout     = errors.New("no pending check-out found for this date")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time must be after check-in time")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
