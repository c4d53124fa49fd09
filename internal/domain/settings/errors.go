package settings

import "errors"

// Settings domain errors
var (
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM (e.g. 09:00)")
	ErrMissingTimes      = errors.New("startTime and endTime are required (e.g. '09:00', '18:00')")
)
