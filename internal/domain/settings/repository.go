package settings

import "context"

// Repository stores singleton configuration values keyed by name. Work hours
// live under a single key; a missing row means defaults apply.
type Repository interface {
	// GetWorkHours returns the stored work-hours value, or nil if unset.
	GetWorkHours(ctx context.Context) (*WorkHours, error)

	// UpsertWorkHours atomically replaces the stored work-hours value.
	UpsertWorkHours(ctx context.Context, value WorkHours) error
}
