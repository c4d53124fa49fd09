package attendance

import (
	"context"
)

// AttendanceService is the attendance engine. The caller's identity is
// resolved from the request context; callers with no linked employee account
// are rejected before any state-machine logic runs.
type AttendanceService interface {
	// CheckIn opens today's record. Status is present when the time of day is
	// at or before the policy start, late otherwise.
	CheckIn(ctx context.Context) (AttendanceResponse, error)

	// CheckOut runs the two-step confirmation protocol; see CheckOutRequest.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResult, error)

	BreakStart(ctx context.Context) (AttendanceResponse, error)
	BreakEnd(ctx context.Context) (AttendanceResponse, error)

	// GetMyToday returns the policy and today's record. After the policy end
	// time it synthesizes an absent record for days with no activity.
	GetMyToday(ctx context.Context) (MyTodayResponse, error)

	// ListPendingCheckouts returns past open records awaiting repair.
	ListPendingCheckouts(ctx context.Context, limit int) ([]PendingCheckoutItem, error)

	// SetCheckOut retroactively closes the open record of a past day.
	SetCheckOut(ctx context.Context, req SetCheckOutRequest) (AttendanceResponse, error)

	// ListToday is the HR view: present employees first, then absent ones,
	// merged and paginated.
	ListToday(ctx context.Context, filter TodayListFilter) (TodayListResponse, error)
}
