package employee

import (
	"context"

	"github.com/talentra-hq/hrms-backend-go/internal/pkg/validator"
)

// EmployeeService is the directory CRUD surface.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string, page, limit int) (ListEmployeesResponse, error)
}

type CreateEmployeeRequest struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	MobileNumber  *string `json:"mobileNumber"`
	PersonalEmail *string `json:"personalEmail"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Gender        *string `json:"gender"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zipCode"`
	AvatarURL     *string `json:"avatarUrl"`
	EmployeeCode  *string `json:"employeeCode"`
	WorkEmail     *string `json:"workEmail"`
	Designation   *string `json:"designation"`
	EmployeeType  *string `json:"employeeType"`
	Department    *string `json:"department"`
	JoiningDate   *string `json:"joiningDate"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "first name is required"})
	}
	if r.WorkEmail != nil && *r.WorkEmail != "" && !validator.IsValidEmail(*r.WorkEmail) {
		errs = append(errs, validator.ValidationError{Field: "workEmail", Message: "invalid email address"})
	}
	if r.PersonalEmail != nil && *r.PersonalEmail != "" && !validator.IsValidEmail(*r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{Field: "personalEmail", Message: "invalid email address"})
	}
	if r.EmployeeType != nil && *r.EmployeeType != "" && !validator.IsInSlice(*r.EmployeeType, []string{"office", "remote"}) {
		errs = append(errs, validator.ValidationError{Field: "employeeType", Message: "must be office or remote"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	CreateEmployeeRequest
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	MobileNumber  *string `json:"mobileNumber"`
	AvatarURL     *string `json:"avatarUrl"`
	EmployeeCode  *string `json:"employeeCode"`
	Designation   *string `json:"designation"`
	EmployeeType  *string `json:"employeeType"`
	Department    *string `json:"department"`
	JoiningDate   *string `json:"joiningDate"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Gender        *string `json:"gender"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zipCode"`
	PersonalEmail *string `json:"personalEmail"`
}

type Pagination struct {
	TotalItems   int64 `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type ListEmployeesResponse struct {
	Items      []EmployeeResponse `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

// NewEmployeeResponse maps the entity to its API shape.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.FullName(),
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email(),
		MobileNumber:  e.MobileNumber,
		AvatarURL:     e.AvatarURL,
		EmployeeCode:  e.EmployeeCode,
		Designation:   e.Designation,
		EmployeeType:  e.EmployeeType,
		Department:    e.Department,
		JoiningDate:   e.JoiningDate,
		DateOfBirth:   e.DateOfBirth,
		Gender:        e.Gender,
		Address:       e.Address,
		City:          e.City,
		State:         e.State,
		ZipCode:       e.ZipCode,
		PersonalEmail: e.PersonalEmail,
	}
}
