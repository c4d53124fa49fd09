package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "18:00"
)

// WorkHours is the organization's single daily working window. Times are
// H:MM / HH:MM wall-clock strings in org-local time; no timezone is stored.
type WorkHours struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DefaultWorkHours returns the policy applied when nothing has been configured.
func DefaultWorkHours() WorkHours {
	return WorkHours{StartTime: DefaultStartTime, EndTime: DefaultEndTime}
}

// Clock is a parsed wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an H:MM or HH:MM string. Hour must be 0-23 and minute
// 00-59; minutes must always be two digits.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return Clock{}, fmt.Errorf("invalid time %q: %w", s, ErrInvalidTimeFormat)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q: %w", s, ErrInvalidTimeFormat)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q: %w", s, ErrInvalidTimeFormat)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("time %q out of range: %w", s, ErrInvalidTimeFormat)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// On anchors the clock to the calendar day of t, in t's location.
func (c Clock) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Start parses the window's start time. The stored value is validated on
// write, so a parse failure here means a corrupted row; defaults apply.
func (w WorkHours) Start() Clock {
	c, err := ParseClock(w.StartTime)
	if err != nil {
		c, _ = ParseClock(DefaultStartTime)
	}
	return c
}

// End parses the window's end time.
func (w WorkHours) End() Clock {
	c, err := ParseClock(w.EndTime)
	if err != nil {
		c, _ = ParseClock(DefaultEndTime)
	}
	return c
}
