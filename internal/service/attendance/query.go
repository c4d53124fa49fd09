package attendance

import (
	"context"
	"fmt"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
)

// ListToday implements attendance.AttendanceService. The view is built from
// two sets: employees with a record today (joined rows from the store) and
// everyone else, rendered as absent. Present rows always come first; the
// page is cut from the merged list so totals count both partitions.
func (a *AttendanceServiceImpl) ListToday(ctx context.Context, filter attendance.TodayListFilter) (attendance.TodayListResponse, error) {
	filter.Normalize()

	day := attendance.DayOf(a.now())

	present, err := a.AttendanceRepository.ListForDay(ctx, day, filter.Search)
	if err != nil {
		return attendance.TodayListResponse{}, err
	}

	all, err := a.EmployeeRepository.ListAll(ctx, filter.Search)
	if err != nil {
		return attendance.TodayListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	seen := make(map[string]struct{}, len(present))
	items := make([]attendance.TodayListItem, 0, len(all))

	for _, rec := range present {
		seen[rec.EmployeeID] = struct{}{}
		items = append(items, todayItemFromRecord(rec))
	}

	for _, emp := range all {
		if _, ok := seen[emp.ID]; ok {
			continue
		}
		item := attendance.TodayListItem{
			ID:          "absent-" + emp.ID,
			EmployeeID:  emp.ID,
			Name:        emp.FullName(),
			Email:       emp.Email(),
			CheckInTime: "--",
			Status:      attendance.FormatStatus(attendance.StatusAbsent),
		}
		if emp.AvatarURL != nil {
			item.AvatarURL = *emp.AvatarURL
		}
		if emp.Designation != nil {
			item.Designation = *emp.Designation
		}
		if emp.EmployeeType != nil {
			item.Type = attendance.FormatWorkType(attendance.WorkType(*emp.EmployeeType))
		}
		items = append(items, item)
	}

	total := len(items)
	totalPages := (total + filter.Limit - 1) / filter.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (filter.Page - 1) * filter.Limit
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	return attendance.TodayListResponse{
		Items: items[start:end],
		Pagination: attendance.Pagination{
			TotalItems:   total,
			TotalPages:   totalPages,
			CurrentPage:  filter.Page,
			ItemsPerPage: filter.Limit,
		},
	}, nil
}

func todayItemFromRecord(rec attendance.TodayRecord) attendance.TodayListItem {
	item := attendance.TodayListItem{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Name:        rec.EmployeeName,
		Email:       rec.Email,
		CheckInTime: attendance.FormatClock12(rec.CheckIn),
		Status:      attendance.FormatStatus(rec.Status),
	}
	if rec.Status == attendance.StatusAbsent {
		// Synthesized rows carry a backdated check-in that was never real.
		item.CheckInTime = "--"
	}
	if rec.AvatarURL != nil {
		item.AvatarURL = *rec.AvatarURL
	}
	if rec.Designation != nil {
		item.Designation = *rec.Designation
	}
	if rec.EmployeeType != nil {
		item.Type = attendance.FormatWorkType(attendance.WorkType(*rec.EmployeeType))
	}
	return item
}
