package employee

import (
	"context"
	"log/slog"
	"strings"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/email"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	emailService email.EmailService
}

func NewEmployeeService(repo employee.EmployeeRepository, emailService email.EmailService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: repo,
		emailService:       emailService,
	}
}

func entityFromRequest(req employee.CreateEmployeeRequest) employee.Employee {
	return employee.Employee{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		MobileNumber:  req.MobileNumber,
		PersonalEmail: req.PersonalEmail,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		AvatarURL:     req.AvatarURL,
		EmployeeCode:  req.EmployeeCode,
		WorkEmail:     req.WorkEmail,
		Designation:   req.Designation,
		EmployeeType:  req.EmployeeType,
		Department:    req.Department,
		JoiningDate:   req.JoiningDate,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, entityFromRequest(req))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Onboarding mail is best-effort; the directory write already happened.
	if to := created.Email(); to != "" {
		if err := s.emailService.SendWelcome(to, created.FullName(), to); err != nil {
			slog.Warn("Failed to send welcome email", "employee_id", created.ID, "error", err)
		}
	}

	return employee.NewEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated := entityFromRequest(req.CreateEmployeeRequest)
	updated.ID = existing.ID
	updated.UserID = existing.UserID

	if err := s.EmployeeRepository.Update(ctx, updated); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, search string, page, limit int) (employee.ListEmployeesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	search = strings.TrimSpace(search)

	items, total, err := s.EmployeeRepository.List(ctx, search, page, limit)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		Items: make([]employee.EmployeeResponse, 0, len(items)),
		Pagination: employee.Pagination{
			TotalItems:   total,
			TotalPages:   int((total + int64(limit) - 1) / int64(limit)),
			CurrentPage:  page,
			ItemsPerPage: limit,
		},
	}
	if resp.Pagination.TotalPages < 1 {
		resp.Pagination.TotalPages = 1
	}
	for _, emp := range items {
		resp.Items = append(resp.Items, employee.NewEmployeeResponse(emp))
	}

	return resp, nil
}
