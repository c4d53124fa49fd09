package postgresql

import (
	"context"
	"fmt"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/dashboard"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountsForToday implements dashboard.DashboardRepository. Absent is derived
// as headcount minus employees with any record today, so the counters agree
// with the attendance today-view regardless of whether absence rows have
// been materialized yet.
func (r *dashboardRepository) CountsForToday(ctx context.Context) (dashboard.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees) AS total_employees,
			(SELECT COUNT(*) FROM attendances
			 WHERE check_in >= CURRENT_DATE
			   AND check_in < CURRENT_DATE + INTERVAL '1 day'
			   AND status <> 'absent') AS present_today,
			(SELECT COUNT(*) FROM leaves WHERE status = 'Pending') AS pending_leaves,
			(SELECT COUNT(*) FROM jobs WHERE status = 'active') AS active_jobs
	`

	var s dashboard.Summary
	err := q.QueryRow(ctx, query).Scan(
		&s.TotalEmployees, &s.PresentToday, &s.PendingLeaves, &s.ActiveJobs,
	)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to load dashboard counts: %w", err)
	}

	s.AbsentToday = s.TotalEmployees - s.PresentToday
	if s.AbsentToday < 0 {
		s.AbsentToday = 0
	}

	return s, nil
}
