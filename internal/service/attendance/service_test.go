package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/auth"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
)

var testAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func ctxWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()

	_, tokenString, err := testAuth.Encode(claims)
	require.NoError(t, err)
	token, err := testAuth.Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func ctxWithEmployee(t *testing.T, employeeID string) context.Context {
	return ctxWithClaims(t, map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": employeeID,
	})
}

// at builds a timestamp on a fixed test day.
func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", "2026-03-02 "+clock)
	require.NoError(t, err)
	return ts
}

type fixture struct {
	svc     *AttendanceServiceImpl
	attRepo *fakeAttendanceRepo
	empRepo *fakeEmployeeRepo
	setRepo *fakeSettingsRepo
	nowVal  time.Time
}

func newFixture(t *testing.T, now time.Time) *fixture {
	empRepo := &fakeEmployeeRepo{}
	attRepo := newFakeAttendanceRepo(empRepo)
	setRepo := &fakeSettingsRepo{}

	f := &fixture{
		attRepo: attRepo,
		empRepo: empRepo,
		setRepo: setRepo,
		nowVal:  now,
	}
	f.svc = &AttendanceServiceImpl{
		AttendanceRepository: attRepo,
		EmployeeRepository:   empRepo,
		settingsRepo:         setRepo,
		now:                  func() time.Time { return f.nowVal },
	}

	designation := "Engineer"
	empRepo.add(employee.Employee{ID: "emp-1", FirstName: "Ava", LastName: "Stone", Designation: &designation})

	return f
}

func TestCheckInStatusBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  attendance.Status
	}{
		{"well before start", "08:30", attendance.StatusPresent},
		{"exactly at start", "09:00", attendance.StatusPresent},
		{"one minute past start", "09:01", attendance.StatusLate},
		{"quarter past start", "09:15", attendance.StatusLate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, at(t, tc.clock))
			ctx := ctxWithEmployee(t, "emp-1")

			resp, err := f.svc.CheckIn(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.Status)
			assert.Equal(t, at(t, tc.clock), resp.CheckIn)
		})
	}
}

func TestCheckInTwiceSameDay(t *testing.T) {
	f := newFixture(t, at(t, "09:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckIn(ctx)
	require.NoError(t, err)

	f.nowVal = at(t, "10:00")
	_, err = f.svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInWithoutLinkedEmployee(t *testing.T) {
	f := newFixture(t, at(t, "09:00"))
	ctx := ctxWithClaims(t, map[string]interface{}{"user_id": "user-1"})

	_, err := f.svc.CheckIn(ctx)
	assert.ErrorIs(t, err, auth.ErrEmployeeNotLinked)
}

func TestCheckOutRequiresOpenRecord(t *testing.T) {
	f := newFixture(t, at(t, "17:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutTwoStepProtocol(t *testing.T) {
	f := newFixture(t, at(t, "09:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckIn(ctx)
	require.NoError(t, err)

	// Before the end of the window an unconfirmed call warns and must not
	// mutate anything.
	f.nowVal = at(t, "16:30")
	result, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeEarlyLeaveWarning, result.Outcome)
	assert.Equal(t, "18:00", result.WorkEndTime)
	assert.Nil(t, result.Attendance)

	rec, err := f.attRepo.GetByEmployeeAndDay(ctx, "emp-1", attendance.DayOf(f.nowVal))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.IsOpen())

	// At or past the end the unconfirmed call asks to confirm the end time.
	f.nowVal = at(t, "18:00")
	result, err = f.svc.CheckOut(ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeConfirmEndTime, result.Outcome)

	// Confirming closes the record at the current instant.
	f.nowVal = at(t, "18:05")
	result, err = f.svc.CheckOut(ctx, attendance.CheckOutRequest{ConfirmEarly: true})
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeClosed, result.Outcome)
	require.NotNil(t, result.Attendance)
	require.NotNil(t, result.Attendance.CheckOut)
	assert.Equal(t, at(t, "18:05"), *result.Attendance.CheckOut)

	// A second confirmed call finds the record already closed.
	_, err = f.svc.CheckOut(ctx, attendance.CheckOutRequest{ConfirmEarly: true})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutWithExplicitTime(t *testing.T) {
	f := newFixture(t, at(t, "09:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckIn(ctx)
	require.NoError(t, err)

	f.nowVal = at(t, "19:00")
	result, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{ConfirmEarly: true, CheckOutTime: "17:45"})
	require.NoError(t, err)
	require.NotNil(t, result.Attendance)
	require.NotNil(t, result.Attendance.CheckOut)
	assert.Equal(t, at(t, "17:45"), *result.Attendance.CheckOut)
}

func TestCheckOutExplicitTimeBeforeCheckInFallsBackToNow(t *testing.T) {
	f := newFixture(t, at(t, "09:30"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckIn(ctx)
	require.NoError(t, err)

	// An explicit time preceding the check-in is ignored on the live path;
	// the record closes at now instead. The strict rejection only applies to
	// the retroactive repair flow.
	f.nowVal = at(t, "18:30")
	result, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{ConfirmEarly: true, CheckOutTime: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeClosed, result.Outcome)
	require.NotNil(t, result.Attendance)
	require.NotNil(t, result.Attendance.CheckOut)
	assert.Equal(t, at(t, "18:30"), *result.Attendance.CheckOut)
}

func TestCheckOutExplicitTimeEqualToCheckIn(t *testing.T) {
	f := newFixture(t, at(t, "09:30"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckIn(ctx)
	require.NoError(t, err)

	// Exactly the check-in instant counts as "not preceding" and is kept.
	f.nowVal = at(t, "18:30")
	result, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{ConfirmEarly: true, CheckOutTime: "09:30"})
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeClosed, result.Outcome)
	require.NotNil(t, result.Attendance)
	require.NotNil(t, result.Attendance.CheckOut)
	assert.Equal(t, at(t, "09:30"), *result.Attendance.CheckOut)
}

func TestCheckOutRejectsMalformedTime(t *testing.T) {
	f := newFixture(t, at(t, "09:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckIn(ctx)
	require.NoError(t, err)

	for _, bad := range []string{"9", "9:5", "25:00", "12:60", "noon"} {
		_, err = f.svc.CheckOut(ctx, attendance.CheckOutRequest{ConfirmEarly: true, CheckOutTime: bad})
		assert.ErrorIs(t, err, settings.ErrInvalidTimeFormat, "time %q", bad)
	}
}

func TestBreakCycle(t *testing.T) {
	f := newFixture(t, at(t, "09:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	// No record yet.
	_, err := f.svc.BreakStart(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	_, err = f.svc.CheckIn(ctx)
	require.NoError(t, err)

	// Ending a break that never started.
	_, err = f.svc.BreakEnd(ctx)
	assert.ErrorIs(t, err, attendance.ErrNotOnBreak)

	f.nowVal = at(t, "12:00")
	resp, err := f.svc.BreakStart(ctx)
	require.NoError(t, err)
	assert.True(t, resp.IsOnBreak)

	_, err = f.svc.BreakStart(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyOnBreak)

	f.nowVal = at(t, "12:45")
	resp, err = f.svc.BreakEnd(ctx)
	require.NoError(t, err)
	assert.False(t, resp.IsOnBreak)
	require.NotNil(t, resp.BreakEnd)
	assert.Equal(t, at(t, "12:45"), *resp.BreakEnd)

	// A later break starts a fresh cycle.
	f.nowVal = at(t, "15:00")
	resp, err = f.svc.BreakStart(ctx)
	require.NoError(t, err)
	assert.True(t, resp.IsOnBreak)
	assert.Nil(t, resp.BreakEnd)
}

func TestCheckOutClosesOpenBreak(t *testing.T) {
	f := newFixture(t, at(t, "09:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckIn(ctx)
	require.NoError(t, err)

	f.nowVal = at(t, "17:00")
	_, err = f.svc.BreakStart(ctx)
	require.NoError(t, err)

	f.nowVal = at(t, "18:10")
	result, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{ConfirmEarly: true})
	require.NoError(t, err)
	require.NotNil(t, result.Attendance)
	assert.False(t, result.Attendance.IsOnBreak)
	require.NotNil(t, result.Attendance.BreakEnd)
	assert.Equal(t, at(t, "18:10"), *result.Attendance.BreakEnd)
}

func TestGetMyTodayBeforeEndWithoutRecord(t *testing.T) {
	f := newFixture(t, at(t, "14:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	resp, err := f.svc.GetMyToday(ctx)
	require.NoError(t, err)
	assert.Nil(t, resp.Attendance)
	assert.Equal(t, "09:00", resp.WorkHours.StartTime)
	assert.Equal(t, "18:00", resp.WorkHours.EndTime)
}

func TestGetMyTodaySynthesizesAbsence(t *testing.T) {
	f := newFixture(t, at(t, "18:05"))
	ctx := ctxWithEmployee(t, "emp-1")

	resp, err := f.svc.GetMyToday(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.Attendance)
	assert.Equal(t, attendance.StatusAbsent, resp.Attendance.Status)
	assert.Equal(t, at(t, "09:00"), resp.Attendance.CheckIn)

	// The synthesized record is persisted, so a later check-in conflicts.
	_, err = f.svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestGetMyTodayReturnsExistingRecord(t *testing.T) {
	f := newFixture(t, at(t, "09:10"))
	ctx := ctxWithEmployee(t, "emp-1")

	_, err := f.svc.CheckIn(ctx)
	require.NoError(t, err)

	f.nowVal = at(t, "19:00")
	resp, err := f.svc.GetMyToday(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.Attendance)
	assert.Equal(t, attendance.StatusLate, resp.Attendance.Status)
}

func TestGetMyTodayUsesConfiguredWorkHours(t *testing.T) {
	f := newFixture(t, at(t, "16:30"))
	require.NoError(t, f.setRepo.UpsertWorkHours(context.Background(), settings.WorkHours{StartTime: "8:00", EndTime: "16:00"}))
	ctx := ctxWithEmployee(t, "emp-1")

	resp, err := f.svc.GetMyToday(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.Attendance)
	assert.Equal(t, attendance.StatusAbsent, resp.Attendance.Status)
	assert.Equal(t, at(t, "08:00"), resp.Attendance.CheckIn)
	assert.Equal(t, "08:00", resp.WorkHours.StartTime)
}

func TestListPendingCheckouts(t *testing.T) {
	f := newFixture(t, at(t, "10:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	// Two stale open records on earlier days, one closed, one open today.
	old1 := at(t, "09:00").AddDate(0, 0, -3)
	old2 := at(t, "09:30").AddDate(0, 0, -1)
	closedOut := at(t, "18:00").AddDate(0, 0, -2)
	closed := at(t, "09:00").AddDate(0, 0, -2)

	_, err := f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-1", CheckIn: old1, Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-1", CheckIn: closed, CheckOut: &closedOut, Status: attendance.StatusPresent})
	require.NoError(t, err)
	_, err = f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-1", CheckIn: old2, Status: attendance.StatusLate})
	require.NoError(t, err)
	_, err = f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-1", CheckIn: at(t, "09:05"), Status: attendance.StatusPresent})
	require.NoError(t, err)

	items, err := f.svc.ListPendingCheckouts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, old2.Format("2006-01-02"), items[0].Date)
	assert.Equal(t, old1.Format("2006-01-02"), items[1].Date)

	items, err = f.svc.ListPendingCheckouts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, old2.Format("2006-01-02"), items[0].Date)
}

func TestSetCheckOut(t *testing.T) {
	f := newFixture(t, at(t, "10:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	checkIn := at(t, "09:10").AddDate(0, 0, -2)
	_, err := f.attRepo.Create(ctx, attendance.Attendance{EmployeeID: "emp-1", CheckIn: checkIn, Status: attendance.StatusLate})
	require.NoError(t, err)

	date := checkIn.Format("2006-01-02")

	// No open record on an unrelated day.
	_, err = f.svc.SetCheckOut(ctx, attendance.SetCheckOutRequest{Date: "2026-01-15", Time: "18:00"})
	assert.ErrorIs(t, err, attendance.ErrNoPendingCheckout)

	// Retroactive closure must land strictly after the check-in.
	_, err = f.svc.SetCheckOut(ctx, attendance.SetCheckOutRequest{Date: date, Time: "09:10"})
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
	_, err = f.svc.SetCheckOut(ctx, attendance.SetCheckOutRequest{Date: date, Time: "08:00"})
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)

	resp, err := f.svc.SetCheckOut(ctx, attendance.SetCheckOutRequest{Date: date, Time: "17:30"})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, checkIn.Truncate(24*time.Hour).Add(17*time.Hour+30*time.Minute), *resp.CheckOut)

	// The record is no longer pending.
	items, err := f.svc.ListPendingCheckouts(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSetCheckOutValidatesInput(t *testing.T) {
	f := newFixture(t, at(t, "10:00"))
	ctx := ctxWithEmployee(t, "emp-1")

	var errs error
	_, errs = f.svc.SetCheckOut(ctx, attendance.SetCheckOutRequest{Date: "02-03-2026", Time: "17:00"})
	assert.Error(t, errs)
	_, errs = f.svc.SetCheckOut(ctx, attendance.SetCheckOutRequest{Date: "2026-03-01", Time: "17"})
	assert.Error(t, errs)
	_, errs = f.svc.SetCheckOut(ctx, attendance.SetCheckOutRequest{})
	assert.Error(t, errs)
}

func TestEmployeeIDFromContextMissingToken(t *testing.T) {
	_, err := employeeIDFromContext(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, auth.ErrEmployeeNotLinked))
}
