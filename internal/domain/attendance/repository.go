package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The store
// enforces at most one record per employee per calendar day of check-in;
// Create surfaces a violation as ErrAlreadyCheckedIn so concurrent check-ins
// resolve to exactly one winner.
type AttendanceRepository interface {
	// Create inserts a new record and returns it with id and timestamps set.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDay returns the employee's record whose check-in falls
	// on the given calendar day, or nil if none exists.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)

	// GetOpenByEmployeeAndDay is GetByEmployeeAndDay restricted to records
	// with no check-out yet.
	GetOpenByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)

	// Update persists check-out and break mutations of an existing record.
	Update(ctx context.Context, att Attendance) error

	// ListOpenBefore returns the employee's open records with check-in
	// strictly before the given day, newest first, capped at limit.
	ListOpenBefore(ctx context.Context, employeeID string, day time.Time, limit int) ([]Attendance, error)

	// ListForDay returns all records of the given day joined with employee
	// display attributes, newest check-in first. Search filters on employee
	// name, email and designation.
	ListForDay(ctx context.Context, day time.Time, search string) ([]TodayRecord, error)
}
