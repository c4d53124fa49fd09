package settings

import (
	"context"
	"fmt"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	repo settings.Repository
}

func NewSettingsService(repo settings.Repository) settings.Service {
	return &SettingsServiceImpl{repo: repo}
}

// GetWorkHours implements settings.Service.
func (s *SettingsServiceImpl) GetWorkHours(ctx context.Context) (settings.WorkHours, error) {
	wh, err := s.repo.GetWorkHours(ctx)
	if err != nil {
		return settings.WorkHours{}, fmt.Errorf("failed to load work hours: %w", err)
	}
	if wh == nil {
		return settings.DefaultWorkHours(), nil
	}

	// Normalize on the way out so clients always see zero-padded HH:MM.
	return settings.WorkHours{
		StartTime: wh.Start().String(),
		EndTime:   wh.End().String(),
	}, nil
}

// UpdateWorkHours implements settings.Service.
func (s *SettingsServiceImpl) UpdateWorkHours(ctx context.Context, req settings.UpdateWorkHoursRequest) (settings.WorkHours, error) {
	if err := req.Validate(); err != nil {
		return settings.WorkHours{}, err
	}

	start, _ := settings.ParseClock(req.StartTime)
	end, _ := settings.ParseClock(req.EndTime)

	value := settings.WorkHours{
		StartTime: start.String(),
		EndTime:   end.String(),
	}

	if err := s.repo.UpsertWorkHours(ctx, value); err != nil {
		return settings.WorkHours{}, fmt.Errorf("failed to store work hours: %w", err)
	}

	return value, nil
}
