package holiday

import (
	"context"
	"errors"
	"time"
)

var ErrHolidayNotFound = errors.New("holiday not found")

// Holiday is a named company-wide non-working day.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Holiday, error)
}

type HolidayService interface {
	List(ctx context.Context) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Day  string `json:"day"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Format("2006-01-02"),
		Day:  h.Date.Format("Monday"),
	}
}
