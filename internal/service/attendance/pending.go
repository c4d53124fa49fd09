package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
)

const (
	// defaultPendingLimit covers a full month of missed checkouts.
	defaultPendingLimit = 31
	maxPendingLimit     = 100
)

// ListPendingCheckouts implements attendance.AttendanceService. It surfaces
// open records from past days, newest first, so the client can prompt for
// retroactive closure.
func (a *AttendanceServiceImpl) ListPendingCheckouts(ctx context.Context, limit int) ([]attendance.PendingCheckoutItem, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = defaultPendingLimit
	}
	if limit > maxPendingLimit {
		limit = maxPendingLimit
	}

	today := attendance.DayOf(a.now())

	records, err := a.AttendanceRepository.ListOpenBefore(ctx, employeeID, today, limit)
	if err != nil {
		return nil, err
	}

	items := make([]attendance.PendingCheckoutItem, 0, len(records))
	for _, rec := range records {
		items = append(items, attendance.PendingCheckoutItem{
			ID:          rec.ID,
			Date:        rec.CheckIn.Format("2006-01-02"),
			CheckInTime: attendance.FormatClock12(rec.CheckIn),
		})
	}

	return items, nil
}

// SetCheckOut implements attendance.AttendanceService. Unlike the live
// confirmed check-out, the retroactive time must be strictly after the
// check-in; a zero-length day is treated as a client mistake.
func (a *AttendanceServiceImpl) SetCheckOut(ctx context.Context, req attendance.SetCheckOutRequest) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, a.now().Location())
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	record, err := a.AttendanceRepository.GetOpenByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load open attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoPendingCheckout
	}

	clock, err := settings.ParseClock(req.Time)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	checkOut := clock.On(record.CheckIn)
	if !checkOut.After(record.CheckIn) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	record.CheckOut = &checkOut
	if record.IsOnBreak() {
		record.BreakEnd = &checkOut
	}

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(*record), nil
}
