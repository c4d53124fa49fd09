package holiday

import (
	"context"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/holiday"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(repo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: repo}
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	items, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]holiday.HolidayResponse, 0, len(items))
	for _, h := range items {
		resp = append(resp, holiday.NewHolidayResponse(h))
	}
	return resp, nil
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "invalid date format, use YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return holiday.HolidayResponse{}, errs
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Name: req.Name,
		Date: date,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.NewHolidayResponse(created), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}
