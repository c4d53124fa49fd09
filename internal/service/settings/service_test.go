package settings

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
)

type fakeRepo struct {
	mu sync.Mutex
	wh *settings.WorkHours
}

func (f *fakeRepo) GetWorkHours(_ context.Context) (*settings.WorkHours, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.wh == nil {
		return nil, nil
	}
	wh := *f.wh
	return &wh, nil
}

func (f *fakeRepo) UpsertWorkHours(_ context.Context, value settings.WorkHours) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wh = &value
	return nil
}

func TestGetWorkHoursDefaults(t *testing.T) {
	svc := NewSettingsService(&fakeRepo{})

	wh, err := svc.GetWorkHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:00", wh.StartTime)
	assert.Equal(t, "18:00", wh.EndTime)
}

func TestUpdateWorkHoursNormalizesSingleDigitHour(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewSettingsService(repo)

	wh, err := svc.UpdateWorkHours(context.Background(), settings.UpdateWorkHoursRequest{StartTime: "8:30", EndTime: "17:00"})
	require.NoError(t, err)
	assert.Equal(t, "08:30", wh.StartTime)
	assert.Equal(t, "17:00", wh.EndTime)

	got, err := svc.GetWorkHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wh, got)
}

func TestUpdateWorkHoursValidation(t *testing.T) {
	svc := NewSettingsService(&fakeRepo{})

	_, err := svc.UpdateWorkHours(context.Background(), settings.UpdateWorkHoursRequest{StartTime: "", EndTime: "17:00"})
	assert.ErrorIs(t, err, settings.ErrMissingTimes)

	for _, tc := range []settings.UpdateWorkHoursRequest{
		{StartTime: "24:00", EndTime: "17:00"},
		{StartTime: "09:00", EndTime: "17:60"},
		{StartTime: "九:00", EndTime: "17:00"},
		{StartTime: "09:0", EndTime: "17:00"},
		{StartTime: "009:00", EndTime: "17:00"},
	} {
		_, err := svc.UpdateWorkHours(context.Background(), tc)
		assert.ErrorIs(t, err, settings.ErrInvalidTimeFormat, "%+v", tc)
	}
}
