package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
)

// AttendanceJobs holds the background maintenance jobs for attendance
// records.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	settingsRepo   settings.Repository
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.Repository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingsRepo:   settingsRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 30*time.Minute, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees materializes absence records for every employee
// who never checked in today. It only acts once the working window has
// ended, so the same read-path synthesis rule applies here in bulk.
// Inserts race benignly with the lazy path: the unique day index makes
// whichever side loses the race a no-op.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := j.now()

	wh, err := j.settingsRepo.GetWorkHours(ctx)
	if err != nil {
		return fmt.Errorf("failed to load work hours: %w", err)
	}
	if wh == nil {
		defaults := settings.DefaultWorkHours()
		wh = &defaults
	}

	endOfWork := wh.End().On(now)
	if now.Before(endOfWork) {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	employees, err := j.employeeRepo.ListAll(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	day := attendance.DayOf(now)
	startOfWork := wh.Start().On(now)
	marked := 0

	for _, emp := range employees {
		existing, err := j.attendanceRepo.GetByEmployeeAndDay(ctx, emp.ID, day)
		if err != nil {
			slog.Error("Cron: Failed to check attendance", "employee_id", emp.ID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		record := attendance.Attendance{
			EmployeeID: emp.ID,
			CheckIn:    startOfWork,
			Status:     attendance.StatusAbsent,
			WorkType:   attendance.WorkTypeOffice,
		}

		if _, err := j.attendanceRepo.Create(ctx, record); err != nil {
			if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
				continue
			}
			slog.Error("Cron: Failed to mark absent", "employee_id", emp.ID, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: Marked absent employees", "count", marked)
	}
	return nil
}
