package payroll

import (
	"context"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
}

func NewPayrollService(repo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{PayrollRepository: repo}
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.ListFilter) (payroll.ListResponse, error) {
	filter.Normalize()

	items, total, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListResponse{}, err
	}

	resp := payroll.ListResponse{
		Items: make([]payroll.PayrollResponse, 0, len(items)),
		Pagination: payroll.Pagination{
			TotalItems:   total,
			TotalPages:   int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
			CurrentPage:  filter.Page,
			ItemsPerPage: filter.Limit,
		},
	}
	if resp.Pagination.TotalPages < 1 {
		resp.Pagination.TotalPages = 1
	}
	for _, p := range items {
		resp.Items = append(resp.Items, payroll.NewPayrollResponse(p))
	}

	return resp, nil
}

func entityFromRequest(req payroll.UpsertRequest) payroll.Payroll {
	status := payroll.Status(req.Status)
	if status == "" {
		status = payroll.StatusPending
	}
	return payroll.Payroll{
		EmployeeID:     req.EmployeeID,
		Name:           req.Name,
		AvatarURL:      req.AvatarURL,
		CTC:            req.CTC,
		SalaryPerMonth: req.SalaryPerMonth,
		Deduction:      req.Deduction,
		Status:         status,
	}
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.UpsertRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	created, err := s.PayrollRepository.Create(ctx, entityFromRequest(req))
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.NewPayrollResponse(created), nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, id string, req payroll.UpsertRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	existing, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	updated := entityFromRequest(req)
	updated.ID = existing.ID

	if err := s.PayrollRepository.Update(ctx, updated); err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.NewPayrollResponse(updated), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	return s.PayrollRepository.Delete(ctx, id)
}
