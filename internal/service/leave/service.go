package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/leave"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/notification"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	notificationSvc notification.Service
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	notificationSvc notification.Service,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		notificationSvc:    notificationSvc,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) (leave.ListResponse, error) {
	filter.Normalize()

	items, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, err
	}

	resp := leave.ListResponse{
		Items: make([]leave.LeaveResponse, 0, len(items)),
		Pagination: leave.Pagination{
			TotalItems:   total,
			TotalPages:   int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
			CurrentPage:  filter.Page,
			ItemsPerPage: filter.Limit,
		},
	}
	if resp.Pagination.TotalPages < 1 {
		resp.Pagination.TotalPages = 1
	}
	for _, l := range items {
		resp.Items = append(resp.Items, leave.NewLeaveResponse(l))
	}

	return resp, nil
}

// Apply implements leave.LeaveService. The requester's employee profile, when
// linked, overrides whatever display name the client sent.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	if to.Before(from) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	days := int(to.Sub(from).Hours()/24) + 1
	dayLabel := fmt.Sprintf("%d Days", days)
	if days == 1 {
		dayLabel = "1 Day"
	}

	entity := leave.Leave{
		EmployeeName: req.EmployeeName,
		LeaveType:    req.LeaveType,
		FromDate:     from,
		ToDate:       to,
		Days:         dayLabel,
		Manager:      req.Manager,
		Status:       leave.StatusPending,
		Reason:       req.Reason,
	}

	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
			if emp, err := s.EmployeeRepository.GetByID(ctx, employeeID); err == nil {
				entity.EmployeeID = &emp.ID
				entity.EmployeeName = emp.FullName()
				entity.AvatarURL = emp.AvatarURL
			}
		}
	}

	created, err := s.LeaveRepository.Create(ctx, entity)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.NewLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) resolve(ctx context.Context, id string, status leave.Status) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if l.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	l.Status = status
	if err := s.LeaveRepository.Update(ctx, l); err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyResolution(ctx, l)

	return leave.NewLeaveResponse(l), nil
}

// notifyResolution pushes the decision to the requester when their account
// is known. Failures are swallowed; the decision already stuck.
func (s *LeaveServiceImpl) notifyResolution(ctx context.Context, l leave.Leave) {
	if s.notificationSvc == nil || l.EmployeeID == nil {
		return
	}
	emp, err := s.EmployeeRepository.GetByID(ctx, *l.EmployeeID)
	if err != nil || emp.UserID == nil {
		return
	}
	_ = s.notificationSvc.Queue(ctx, notification.QueueRequest{
		UserID:  *emp.UserID,
		Title:   fmt.Sprintf("Leave %s", l.Status),
		Message: fmt.Sprintf("Your %s request (%s) was %s", l.LeaveType, l.Days, l.Status),
		Kind:    notification.KindBriefcase,
	})
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, id, leave.StatusRejected)
}
