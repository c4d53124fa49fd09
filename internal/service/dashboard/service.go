package dashboard

import (
	"context"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{DashboardRepository: repo}
}

// Summary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.Summary, error) {
	return s.DashboardRepository.CountsForToday(ctx)
}
