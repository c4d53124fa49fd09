package dashboard

import "context"

// Summary aggregates the landing-page counters.
type Summary struct {
	TotalEmployees int64 `json:"totalEmployees"`
	PresentToday   int64 `json:"presentToday"`
	AbsentToday    int64 `json:"absentToday"`
	PendingLeaves  int64 `json:"pendingLeaves"`
	ActiveJobs     int64 `json:"activeJobs"`
}

type DashboardRepository interface {
	// CountsForToday returns headcount and present/absent counts for the
	// given calendar day plus pending leave and active job counts.
	CountsForToday(ctx context.Context) (Summary, error)
}

type DashboardService interface {
	Summary(ctx context.Context) (Summary, error)
}
