package payroll

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/pkg/validator"
)

var ErrPayrollNotFound = errors.New("payroll record not found")

type Status string

const (
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
)

// Payroll is a flat ledger row; amounts are stored as display strings and
// never computed here.
type Payroll struct {
	ID             string
	EmployeeID     *string
	Name           string
	AvatarURL      *string
	CTC            string
	SalaryPerMonth string
	Deduction      string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	Update(ctx context.Context, p Payroll) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Payroll, int64, error)
}

type PayrollService interface {
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	Create(ctx context.Context, req UpsertRequest) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpsertRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
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
	if !validator.IsInSlice(f.Status, []string{string(StatusCompleted), string(StatusPending)}) {
		f.Status = ""
	}
}

type UpsertRequest struct {
	EmployeeID     *string `json:"employeeId"`
	Name           string  `json:"name"`
	AvatarURL      *string `json:"avatarUrl"`
	CTC            string  `json:"ctc"`
	SalaryPerMonth string  `json:"salaryPerMonth"`
	Deduction      string  `json:"deduction"`
	Status         string  `json:"status"`
}

func (r UpsertRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.CTC) {
		errs = append(errs, validator.ValidationError{Field: "ctc", Message: "ctc is required"})
	}
	if validator.IsEmpty(r.SalaryPerMonth) {
		errs = append(errs, validator.ValidationError{Field: "salaryPerMonth", Message: "salaryPerMonth is required"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusCompleted), string(StatusPending)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Completed or Pending"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID             string  `json:"id"`
	EmployeeID     *string `json:"employeeId"`
	Name           string  `json:"name"`
	AvatarURL      *string `json:"avatarUrl"`
	CTC            string  `json:"ctc"`
	SalaryPerMonth string  `json:"salaryPerMonth"`
	Deduction      string  `json:"deduction"`
	Status         Status  `json:"status"`
}

type Pagination struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type ListResponse struct {
	Items      []PayrollResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

func NewPayrollResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		Name:           p.Name,
		AvatarURL:      p.AvatarURL,
		CTC:            p.CTC,
		SalaryPerMonth: p.SalaryPerMonth,
		Deduction:      p.Deduction,
		Status:         p.Status,
	}
}
