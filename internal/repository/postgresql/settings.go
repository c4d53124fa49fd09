package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/database"
)

const workHoursKey = "workHours"

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepository{db: db}
}

// GetWorkHours implements settings.Repository.
func (s *settingsRepository) GetWorkHours(ctx context.Context) (*settings.WorkHours, error) {
	q := GetQuerier(ctx, s.db)

	var raw []byte
	err := q.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, workHoursKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work hours: %w", err)
	}

	var wh settings.WorkHours
	if err := json.Unmarshal(raw, &wh); err != nil {
		return nil, fmt.Errorf("failed to decode work hours: %w", err)
	}

	return &wh, nil
}

// UpsertWorkHours implements settings.Repository.
func (s *settingsRepository) UpsertWorkHours(ctx context.Context, value settings.WorkHours) error {
	q := GetQuerier(ctx, s.db)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode work hours: %w", err)
	}

	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, workHoursKey, raw); err != nil {
		return fmt.Errorf("failed to upsert work hours: %w", err)
	}

	return nil
}
