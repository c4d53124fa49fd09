package attendance

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
)

// fakeAttendanceRepo is an in-memory store that mirrors the database
// contract, including the one-record-per-employee-per-day guarantee.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records []attendance.Attendance
	nextID  int

	employees *fakeEmployeeRepo
}

func newFakeAttendanceRepo(employees *fakeEmployeeRepo) *fakeAttendanceRepo {
	return &fakeAttendanceRepo{employees: employees}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	day := attendance.DayOf(att.CheckIn)
	for _, existing := range f.records {
		if existing.EmployeeID == att.EmployeeID && attendance.DayOf(existing.CheckIn).Equal(day) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}

	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.records {
		if f.records[i].EmployeeID == employeeID && attendance.DayOf(f.records[i].CheckIn).Equal(day) {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetOpenByEmployeeAndDay(_ context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.records {
		rec := f.records[i]
		if rec.EmployeeID == employeeID && attendance.DayOf(rec.CheckIn).Equal(day) && rec.IsOpen() {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.records {
		if f.records[i].ID == att.ID {
			att.UpdatedAt = time.Now()
			f.records[i] = att
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListOpenBefore(_ context.Context, employeeID string, day time.Time, limit int) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.IsOpen() && rec.CheckIn.Before(day) {
			result = append(result, rec)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CheckIn.After(result[j].CheckIn)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListForDay(_ context.Context, day time.Time, search string) ([]attendance.TodayRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []attendance.TodayRecord
	for _, rec := range f.records {
		if !attendance.DayOf(rec.CheckIn).Equal(day) {
			continue
		}
		emp, ok := f.employees.byID(rec.EmployeeID)
		if !ok {
			continue
		}
		if search != "" && !employeeMatches(emp, search) {
			continue
		}
		result = append(result, attendance.TodayRecord{
			Attendance:   rec,
			EmployeeName: emp.FullName(),
			Email:        emp.Email(),
			AvatarURL:    emp.AvatarURL,
			Designation:  emp.Designation,
			EmployeeType: emp.EmployeeType,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CheckIn.After(result[j].CheckIn)
	})
	return result, nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) add(emp employee.Employee) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees = append(f.employees, emp)
}

func (f *fakeEmployeeRepo) byID(id string) (employee.Employee, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return employee.Employee{}, false
}

func employeeMatches(emp employee.Employee, search string) bool {
	s := strings.ToLower(search)
	if strings.Contains(strings.ToLower(emp.FullName()), s) {
		return true
	}
	if strings.Contains(strings.ToLower(emp.Email()), s) {
		return true
	}
	if emp.Designation != nil && strings.Contains(strings.ToLower(*emp.Designation), s) {
		return true
	}
	return false
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.add(emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.byID(id); ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (*employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, emp := range f.employees {
		if emp.UserID != nil && *emp.UserID == userID {
			e := emp
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeEmployeeRepo) List(_ context.Context, search string, page, limit int) ([]employee.Employee, int64, error) {
	all, _ := f.ListAll(context.Background(), search)
	return all, int64(len(all)), nil
}

func (f *fakeEmployeeRepo) ListAll(_ context.Context, search string) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []employee.Employee
	for _, emp := range f.employees {
		if search != "" && !employeeMatches(emp, search) {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

type fakeSettingsRepo struct {
	mu sync.Mutex
	wh *settings.WorkHours
}

func (f *fakeSettingsRepo) GetWorkHours(_ context.Context) (*settings.WorkHours, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.wh == nil {
		return nil, nil
	}
	wh := *f.wh
	return &wh, nil
}

func (f *fakeSettingsRepo) UpsertWorkHours(_ context.Context, value settings.WorkHours) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wh = &value
	return nil
}
