package leave

import (
	"context"
	"strings"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/pkg/validator"
)

type LeaveService interface {
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	Apply(ctx context.Context, req ApplyRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, id string) (LeaveResponse, error)
}

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	Update(ctx context.Context, l Leave) error
	List(ctx context.Context, filter ListFilter) ([]Leave, int64, error)
}

type ListFilter struct {
	Page   int
	Limit  int
	Status string
	Search string
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	f.Search = strings.TrimSpace(f.Search)
	if !validator.IsInSlice(f.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		f.Status = ""
	}
}

type ApplyRequest struct {
	LeaveType    string  `json:"leaveType"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Reason       *string `json:"reason"`
	EmployeeName string  `json:"employeeName"`
	Manager      string  `json:"manager"`
}

func (r ApplyRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leave type is required"})
	}
	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "invalid date format, use YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "invalid date format, use YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeName string  `json:"employeeName"`
	AvatarURL    *string `json:"avatarUrl"`
	LeaveType    string  `json:"leaveType"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Days         string  `json:"days"`
	Manager      string  `json:"manager"`
	Status       Status  `json:"status"`
	Reason       *string `json:"reason"`
}

type Pagination struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type ListResponse struct {
	Items      []LeaveResponse `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// NewLeaveResponse formats dates as short display strings ("Jan 02, 2006").
func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeName: l.EmployeeName,
		AvatarURL:    l.AvatarURL,
		LeaveType:    l.LeaveType,
		From:         formatShortDate(l.FromDate),
		To:           formatShortDate(l.ToDate),
		Days:         l.Days,
		Manager:      l.Manager,
		Status:       l.Status,
		Reason:       l.Reason,
	}
}

func formatShortDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}
