package attendance

import (
	"strings"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/validator"
)

// CheckOutRequest drives the two-step confirmation protocol. The first call
// arrives without ConfirmEarly and only produces a prompt; the client
// re-submits with ConfirmEarly=true (and optionally an explicit H:MM time)
// to actually close the record.
type CheckOutRequest struct {
	ConfirmEarly bool   `json:"confirmEarly"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
}

// CheckOutOutcome tags the result of a check-out call.
type CheckOutOutcome string

const (
	// OutcomeClosed means the record was mutated and is now closed.
	OutcomeClosed CheckOutOutcome = "closed"
	// OutcomeEarlyLeaveWarning means now is before the policy end time and
	// the caller must confirm; nothing was written.
	OutcomeEarlyLeaveWarning CheckOutOutcome = "early_leave_warning"
	// OutcomeConfirmEndTime means now is at/after the policy end time and the
	// caller must confirm the end time; nothing was written.
	OutcomeConfirmEndTime CheckOutOutcome = "confirm_end_time"
)

// CheckOutResult is the tagged result of CheckOut. Warning outcomes are
// successful responses, not errors.
type CheckOutResult struct {
	Outcome     CheckOutOutcome
	WorkEndTime string
	Attendance  *AttendanceResponse
}

// AttendanceResponse is the employee-facing view of a record. The *Time
// fields are 12-hour presentation strings; the raw instants stay RFC3339.
type AttendanceResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employeeId"`
	CheckIn        time.Time  `json:"checkIn"`
	CheckInTime    string     `json:"checkInTime"`
	CheckOut       *time.Time `json:"checkOut"`
	CheckOutTime   *string    `json:"checkOutTime"`
	Status         Status     `json:"status"`
	WorkType       WorkType   `json:"workType"`
	BreakStart     *time.Time `json:"breakStart"`
	BreakStartTime *string    `json:"breakStartTime"`
	BreakEnd       *time.Time `json:"breakEnd"`
	BreakEndTime   *string    `json:"breakEndTime"`
	IsOnBreak      bool       `json:"isOnBreak"`
}

// MyTodayResponse pairs the active policy with today's record, if any.
type MyTodayResponse struct {
	WorkHours  settings.WorkHours  `json:"workHours"`
	Attendance *AttendanceResponse `json:"attendance"`
}

// PendingCheckoutItem is a past open record awaiting retroactive closure.
type PendingCheckoutItem struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	CheckInTime string `json:"checkInTime"`
}

// SetCheckOutRequest retroactively closes the open record of a past day.
type SetCheckOutRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (r SetCheckOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Date) || validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date and time are required (YYYY-MM-DD, HH:MM)"})
		return errs
	}
	if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "invalid date format, use YYYY-MM-DD"})
	}
	if !validator.IsClockFormat(r.Time) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "invalid time format, use HH:MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TodayListFilter filters and paginates the HR "who is in today" view.
type TodayListFilter struct {
	Page   int
	Limit  int
	Search string
}

const maxTodayListLimit = 100

// Normalize applies the pagination defaults and cap.
func (f *TodayListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > maxTodayListLimit {
		f.Limit = maxTodayListLimit
	}
	f.Search = strings.TrimSpace(f.Search)
}

// TodayListItem is one row of the merged present+absent list. Values are
// display-formatted; absent rows carry a synthetic "absent-<employeeId>" id.
type TodayListItem struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Designation string `json:"designation"`
	Type        string `json:"type"`
	CheckInTime string `json:"checkInTime"`
	Status      string `json:"status"`
}

type Pagination struct {
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type TodayListResponse struct {
	Items      []TodayListItem `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// TodayRecord is the read model the repository returns for the HR view:
// today's record joined with employee display attributes.
type TodayRecord struct {
	Attendance
	EmployeeName string
	Email        string
	AvatarURL    *string
	Designation  *string
	EmployeeType *string
}

// FormatClock12 renders an instant as a 12-hour clock string ("09:05 AM").
func FormatClock12(t time.Time) string {
	return t.Format("03:04 PM")
}

func formatClock12Ptr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatClock12(*t)
	return &s
}

// FormatStatus renders a status for list views.
func FormatStatus(s Status) string {
	switch s {
	case StatusLate:
		return "Late"
	case StatusAbsent:
		return "Absent"
	default:
		return "On Time"
	}
}

// FormatWorkType renders a work type for list views.
func FormatWorkType(w WorkType) string {
	if w == WorkTypeRemote {
		return "Remote"
	}
	return "Office"
}

// NewAttendanceResponse decorates a record with its presentation strings.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		CheckIn:        a.CheckIn,
		CheckInTime:    FormatClock12(a.CheckIn),
		CheckOut:       a.CheckOut,
		CheckOutTime:   formatClock12Ptr(a.CheckOut),
		Status:         a.Status,
		WorkType:       a.WorkType,
		BreakStart:     a.BreakStart,
		BreakStartTime: formatClock12Ptr(a.BreakStart),
		BreakEnd:       a.BreakEnd,
		BreakEndTime:   formatClock12Ptr(a.BreakEnd),
		IsOnBreak:      a.IsOnBreak(),
	}
}
