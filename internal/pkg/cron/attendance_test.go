package cron

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
)

type stubAttendanceRepo struct {
	records []attendance.Attendance
}

func (r *stubAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	day := attendance.DayOf(att.CheckIn)
	for _, existing := range r.records {
		if existing.EmployeeID == att.EmployeeID && attendance.DayOf(existing.CheckIn).Equal(day) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	att.ID = fmt.Sprintf("att-%d", len(r.records)+1)
	r.records = append(r.records, att)
	return att, nil
}

func (r *stubAttendanceRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	for i := range r.records {
		if r.records[i].EmployeeID == employeeID && attendance.DayOf(r.records[i].CheckIn).Equal(attendance.DayOf(day)) {
			return &r.records[i], nil
		}
	}
	return nil, nil
}

func (r *stubAttendanceRepo) GetOpenByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	rec, err := r.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil || rec == nil || rec.CheckOut != nil {
		return nil, err
	}
	return rec, nil
}

func (r *stubAttendanceRepo) Update(context.Context, attendance.Attendance) error {
	return nil
}

func (r *stubAttendanceRepo) ListOpenBefore(context.Context, string, time.Time, int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *stubAttendanceRepo) ListForDay(context.Context, time.Time, string) ([]attendance.TodayRecord, error) {
	return nil, nil
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (r *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) GetByID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) GetByUserID(context.Context, string) (*employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) Update(context.Context, employee.Employee) error { return nil }
func (r *stubEmployeeRepo) Delete(context.Context, string) error            { return nil }

func (r *stubEmployeeRepo) List(context.Context, string, int, int) ([]employee.Employee, int64, error) {
	return r.employees, int64(len(r.employees)), nil
}

func (r *stubEmployeeRepo) ListAll(context.Context, string) ([]employee.Employee, error) {
	return r.employees, nil
}

type stubSettingsRepo struct {
	workHours *settings.WorkHours
}

func (r *stubSettingsRepo) GetWorkHours(context.Context) (*settings.WorkHours, error) {
	return r.workHours, nil
}

func (r *stubSettingsRepo) UpsertWorkHours(_ context.Context, value settings.WorkHours) error {
	r.workHours = &value
	return nil
}

func jobsAt(clock string, attRepo *stubAttendanceRepo, empRepo *stubEmployeeRepo, setRepo *stubSettingsRepo) *AttendanceJobs {
	jobs := NewAttendanceJobs(attRepo, empRepo, setRepo)
	now, _ := time.Parse("2006-01-02 15:04", "2026-03-02 "+clock)
	jobs.now = func() time.Time { return now }
	return jobs
}

func TestMarkAbsentEmployeesBeforeEndIsNoOp(t *testing.T) {
	attRepo := &stubAttendanceRepo{}
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{{ID: "emp-1"}}}

	jobs := jobsAt("17:59", attRepo, empRepo, &stubSettingsRepo{})
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	assert.Empty(t, attRepo.records)
}

func TestMarkAbsentEmployeesAfterEnd(t *testing.T) {
	attRepo := &stubAttendanceRepo{}
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{{ID: "emp-1"}, {ID: "emp-2"}}}

	// emp-2 already checked in today.
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: "emp-2",
		CheckIn:    time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	jobs := jobsAt("18:00", attRepo, empRepo, &stubSettingsRepo{})
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	require.Len(t, attRepo.records, 2)
	synthesized := attRepo.records[1]
	assert.Equal(t, "emp-1", synthesized.EmployeeID)
	assert.Equal(t, attendance.StatusAbsent, synthesized.Status)
	assert.Equal(t, 9, synthesized.CheckIn.Hour())
	assert.Equal(t, 0, synthesized.CheckIn.Minute())
}

func TestMarkAbsentEmployeesHonorsConfiguredHours(t *testing.T) {
	attRepo := &stubAttendanceRepo{}
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{{ID: "emp-1"}}}
	setRepo := &stubSettingsRepo{workHours: &settings.WorkHours{StartTime: "08:00", EndTime: "16:00"}}

	jobs := jobsAt("16:30", attRepo, empRepo, setRepo)
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	require.Len(t, attRepo.records, 1)
	assert.Equal(t, 8, attRepo.records[0].CheckIn.Hour())
}

func TestMarkAbsentEmployeesIsIdempotent(t *testing.T) {
	attRepo := &stubAttendanceRepo{}
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{{ID: "emp-1"}}}

	jobs := jobsAt("18:30", attRepo, empRepo, &stubSettingsRepo{})
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	assert.Len(t, attRepo.records, 1)
}
