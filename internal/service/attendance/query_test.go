package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
)

func seedDirectory(f *fixture) {
	remote := "remote"
	office := "office"
	design := "Designer"
	sales := "Sales Lead"

	f.empRepo.add(employee.Employee{ID: "emp-2", FirstName: "Bruno", LastName: "Mills", EmployeeType: &remote, Designation: &design})
	f.empRepo.add(employee.Employee{ID: "emp-3", FirstName: "Carol", LastName: "Diaz", EmployeeType: &office, Designation: &sales})
}

func TestListTodayMergesPresentFirst(t *testing.T) {
	f := newFixture(t, at(t, "11:00"))
	seedDirectory(f)
	ctx := ctxWithEmployee(t, "emp-1")

	// emp-1 checks in late, emp-2 on time; emp-3 never shows up.
	_, err := f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-1", CheckIn: at(t, "09:20"), Status: attendance.StatusLate})
	require.NoError(t, err)
	_, err = f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-2", CheckIn: at(t, "08:55"), Status: attendance.StatusPresent})
	require.NoError(t, err)

	resp, err := f.svc.ListToday(ctx, attendance.TodayListFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, 3, resp.Pagination.TotalItems)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
	assert.Equal(t, 10, resp.Pagination.ItemsPerPage)

	// Present rows first, newest check-in first, then absentees.
	assert.Equal(t, "emp-1", resp.Items[0].EmployeeID)
	assert.Equal(t, "Late", resp.Items[0].Status)
	assert.Equal(t, "09:20 AM", resp.Items[0].CheckInTime)

	assert.Equal(t, "emp-2", resp.Items[1].EmployeeID)
	assert.Equal(t, "On Time", resp.Items[1].Status)

	assert.Equal(t, "emp-3", resp.Items[2].EmployeeID)
	assert.Equal(t, "absent-emp-3", resp.Items[2].ID)
	assert.Equal(t, "Absent", resp.Items[2].Status)
	assert.Equal(t, "--", resp.Items[2].CheckInTime)
}

func TestListTodaySynthesizedAbsenceRow(t *testing.T) {
	f := newFixture(t, at(t, "19:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	// A materialized absence keeps its stored row but renders like an
	// absentee, not like a 09:00 check-in.
	_, err := f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-1", CheckIn: at(t, "09:00"), Status: attendance.StatusAbsent})
	require.NoError(t, err)

	resp, err := f.svc.ListToday(ctx, attendance.TodayListFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Absent", resp.Items[0].Status)
	assert.Equal(t, "--", resp.Items[0].CheckInTime)
	assert.NotEqual(t, "absent-emp-1", resp.Items[0].ID)
}

func TestListTodaySearchFiltersBothPartitions(t *testing.T) {
	f := newFixture(t, at(t, "11:00"))
	seedDirectory(f)
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-2", CheckIn: at(t, "09:00"), Status: attendance.StatusPresent})
	require.NoError(t, err)

	resp, err := f.svc.ListToday(ctx, attendance.TodayListFilter{Search: "bruno"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "emp-2", resp.Items[0].EmployeeID)

	resp, err = f.svc.ListToday(ctx, attendance.TodayListFilter{Search: "sales"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "emp-3", resp.Items[0].EmployeeID)
	assert.Equal(t, "Absent", resp.Items[0].Status)
}

func TestListTodayPagination(t *testing.T) {
	f := newFixture(t, at(t, "11:00"))
	seedDirectory(f)
	ctx := ctxWithEmployee(t, "emp-1")

	resp, err := f.svc.ListToday(ctx, attendance.TodayListFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 3, resp.Pagination.TotalItems)
	assert.Equal(t, 2, resp.Pagination.TotalPages)

	resp, err = f.svc.ListToday(ctx, attendance.TodayListFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)

	// A page past the end is empty, not an error.
	resp, err = f.svc.ListToday(ctx, attendance.TodayListFilter{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	// The limit is capped.
	resp, err = f.svc.ListToday(ctx, attendance.TodayListFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Pagination.ItemsPerPage)
}
