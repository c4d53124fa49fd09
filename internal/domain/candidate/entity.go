package candidate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/pkg/validator"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type Status string

const (
	StatusSelected  Status = "Selected"
	StatusInProcess Status = "In Process"
	StatusRejected  Status = "Rejected"
)

// Candidate is an applicant for a job posting.
type Candidate struct {
	ID          string
	Name        string
	AvatarURL   *string
	AppliedFor  string
	AppliedDate string
	Email       string
	Mobile      *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	Update(ctx context.Context, c Candidate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Candidate, int64, error)
}

type CandidateService interface {
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	Create(ctx context.Context, req UpsertRequest) (CandidateResponse, error)
	Update(ctx context.Context, id string, req UpsertRequest) (CandidateResponse, error)
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
	if !validator.IsInSlice(f.Status, []string{string(StatusSelected), string(StatusInProcess), string(StatusRejected)}) {
		f.Status = ""
	}
}

type UpsertRequest struct {
	Name        string  `json:"name"`
	AvatarURL   *string `json:"avatarUrl"`
	AppliedFor  string  `json:"appliedFor"`
	AppliedDate string  `json:"appliedDate"`
	Email       string  `json:"email"`
	Mobile      *string `json:"mobile"`
	Status      string  `json:"status"`
}

func (r UpsertRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.AppliedFor) {
		errs = append(errs, validator.ValidationError{Field: "appliedFor", Message: "appliedFor is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusSelected), string(StatusInProcess), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Selected, In Process or Rejected"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CandidateResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AvatarURL   *string `json:"avatarUrl"`
	AppliedFor  string  `json:"appliedFor"`
	AppliedDate string  `json:"appliedDate"`
	Email       string  `json:"email"`
	Mobile      *string `json:"mobile"`
	Status      Status  `json:"status"`
}

type Pagination struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type ListResponse struct {
	Items      []CandidateResponse `json:"items"`
	Pagination Pagination          `json:"pagination"`
}

func NewCandidateResponse(c Candidate) CandidateResponse {
	return CandidateResponse{
		ID:          c.ID,
		Name:        c.Name,
		AvatarURL:   c.AvatarURL,
		AppliedFor:  c.AppliedFor,
		AppliedDate: c.AppliedDate,
		Email:       c.Email,
		Mobile:      c.Mobile,
		Status:      c.Status,
	}
}
