package job

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/talentra-hq/hrms-backend-go/internal/pkg/validator"
)

var ErrJobNotFound = errors.New("job posting not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCompleted Status = "completed"
)

// Job is an open position posting.
type Job struct {
	ID             string
	Title          string
	Department     string
	Location       string
	AmountPerMonth string
	Status         Status
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Job, int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}

type JobService interface {
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	Create(ctx context.Context, req UpsertRequest) (JobResponse, error)
	Update(ctx context.Context, id string, req UpsertRequest) (JobResponse, error)
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
	if !validator.IsInSlice(f.Status, []string{string(StatusActive), string(StatusInactive), string(StatusCompleted)}) {
		f.Status = ""
	}
}

type UpsertRequest struct {
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	AmountPerMonth string   `json:"amountPerMonth"`
	Status         string   `json:"status"`
	Tags           []string `json:"tags"`
}

func (r UpsertRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "location is required"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive), string(StatusCompleted)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, inactive or completed"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	AmountPerMonth string   `json:"amountPerMonth"`
	Status         Status   `json:"status"`
	Tags           []string `json:"tags"`
}

type Pagination struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type ListResponse struct {
	Items      []JobResponse `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

func NewJobResponse(j Job) JobResponse {
	tags := j.Tags
	if tags == nil {
		tags = []string{}
	}
	return JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Department:     j.Department,
		Location:       j.Location,
		AmountPerMonth: j.AmountPerMonth,
		Status:         j.Status,
		Tags:           tags,
	}
}
