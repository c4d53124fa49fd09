package settings

import "context"

// Service exposes the work-hours policy. Get never fails with "no policy":
// defaults are substituted transparently.
type Service interface {
	GetWorkHours(ctx context.Context) (WorkHours, error)
	UpdateWorkHours(ctx context.Context, req UpdateWorkHoursRequest) (WorkHours, error)
}

type UpdateWorkHoursRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Validate checks both times are well-formed wall-clock strings.
func (r UpdateWorkHoursRequest) Validate() error {
	if r.StartTime == "" || r.EndTime == "" {
		return ErrMissingTimes
	}
	if _, err := ParseClock(r.StartTime); err != nil {
		return err
	}
	if _, err := ParseClock(r.EndTime); err != nil {
		return err
	}
	return nil
}
