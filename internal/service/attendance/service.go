package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/auth"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	settingsRepo settings.Repository

	// now is swapped out in tests to pin the clock.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.Repository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		settingsRepo:         settingsRepo,
		now:                  time.Now,
	}
}

// employeeIDFromContext resolves the caller's employee identity from the
// verified JWT claims. Users without a linked employee record are rejected
// here, before any attendance logic runs.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrEmployeeNotLinked
	}

	return employeeID, nil
}

// workHours loads the active policy, falling back to defaults when nothing
// has been configured.
func (a *AttendanceServiceImpl) workHours(ctx context.Context) (settings.WorkHours, error) {
	wh, err := a.settingsRepo.GetWorkHours(ctx)
	if err != nil {
		return settings.WorkHours{}, fmt.Errorf("failed to load work hours: %w", err)
	}
	if wh == nil {
		return settings.DefaultWorkHours(), nil
	}
	return *wh, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	day := attendance.DayOf(now)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	wh, err := a.workHours(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// At or before the scheduled start is on time; the first minute past it
	// is already late.
	status := attendance.StatusPresent
	if attendance.MinutesOfDay(now) > wh.Start().Minutes() {
		status = attendance.StatusLate
	}

	record := attendance.Attendance{
		EmployeeID: employeeID,
		CheckIn:    now,
		Status:     status,
		WorkType:   attendance.WorkTypeOffice,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// openToday returns today's open record, distinguishing "never checked in"
// from "already checked out".
func (a *AttendanceServiceImpl) openToday(ctx context.Context, employeeID string, now time.Time) (*attendance.Attendance, error) {
	day := attendance.DayOf(now)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if existing == nil {
		return nil, attendance.ErrNotCheckedIn
	}
	if !existing.IsOpen() {
		return nil, attendance.ErrAlreadyCheckedOut
	}

	return existing, nil
}

// CheckOut implements attendance.AttendanceService. Without confirmation the
// call never mutates state: it only reports which prompt the client should
// show. A confirmed call closes the record at now, or at an explicit
// wall-clock time on the check-in day when that time does not precede the
// check-in.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResult, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResult{}, err
	}

	now := a.now()

	record, err := a.openToday(ctx, employeeID, now)
	if err != nil {
		return attendance.CheckOutResult{}, err
	}

	wh, err := a.workHours(ctx)
	if err != nil {
		return attendance.CheckOutResult{}, err
	}
	workEnd := wh.End()

	if !req.ConfirmEarly {
		outcome := attendance.OutcomeConfirmEndTime
		if now.Before(workEnd.On(now)) {
			outcome = attendance.OutcomeEarlyLeaveWarning
		}
		return attendance.CheckOutResult{
			Outcome:     outcome,
			WorkEndTime: workEnd.String(),
		}, nil
	}

	checkOut := now
	if req.CheckOutTime != "" {
		clock, err := settings.ParseClock(req.CheckOutTime)
		if err != nil {
			return attendance.CheckOutResult{}, err
		}
		// An explicit time that would precede the check-in falls back to now;
		// the strict rejection lives on the retroactive repair path only.
		if explicit := clock.On(record.CheckIn); !explicit.Before(record.CheckIn) {
			checkOut = explicit
		}
	}

	record.CheckOut = &checkOut
	if record.IsOnBreak() {
		record.BreakEnd = &checkOut
	}

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.CheckOutResult{}, err
	}

	resp := attendance.NewAttendanceResponse(*record)
	return attendance.CheckOutResult{
		Outcome:     attendance.OutcomeClosed,
		WorkEndTime: workEnd.String(),
		Attendance:  &resp,
	}, nil
}

// BreakStart implements attendance.AttendanceService. Starting a break after
// an earlier one completed begins a fresh cycle; only the latest is kept.
func (a *AttendanceServiceImpl) BreakStart(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()

	record, err := a.openToday(ctx, employeeID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record.IsOnBreak() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyOnBreak
	}

	record.BreakStart = &now
	record.BreakEnd = nil

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(*record), nil
}

// BreakEnd implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) BreakEnd(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()

	record, err := a.openToday(ctx, employeeID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !record.IsOnBreak() {
		return attendance.AttendanceResponse{}, attendance.ErrNotOnBreak
	}

	record.BreakEnd = &now

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(*record), nil
}

// GetMyToday implements attendance.AttendanceService. Once the working window
// has ended, a day with no activity is materialized as an absent record with
// the check-in backdated to the scheduled start. The write relies on the
// per-day uniqueness guarantee, so a race with a concurrent writer falls back
// to whatever record won.
func (a *AttendanceServiceImpl) GetMyToday(ctx context.Context) (attendance.MyTodayResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.MyTodayResponse{}, err
	}

	now := a.now()
	day := attendance.DayOf(now)

	wh, err := a.workHours(ctx)
	if err != nil {
		return attendance.MyTodayResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return attendance.MyTodayResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}

	if record == nil && !now.Before(wh.End().On(now)) {
		synthetic := attendance.Attendance{
			EmployeeID: employeeID,
			CheckIn:    wh.Start().On(now),
			Status:     attendance.StatusAbsent,
			WorkType:   attendance.WorkTypeOffice,
		}

		created, err := a.AttendanceRepository.Create(ctx, synthetic)
		if err == nil {
			record = &created
		} else {
			record, err = a.AttendanceRepository.GetByEmployeeAndDay(ctx, employeeID, day)
			if err != nil {
				return attendance.MyTodayResponse{}, fmt.Errorf("failed to reload today's attendance: %w", err)
			}
		}
	}

	resp := attendance.MyTodayResponse{
		WorkHours: settings.WorkHours{
			StartTime: wh.Start().String(),
			EndTime:   wh.End().String(),
		},
	}
	if record != nil {
		ar := attendance.NewAttendanceResponse(*record)
		resp.Attendance = &ar
	}

	return resp, nil
}
