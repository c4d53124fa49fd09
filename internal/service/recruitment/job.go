package recruitment

import (
	"context"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/job"
)

type JobServiceImpl struct {
	job.JobRepository
}

func NewJobService(repo job.JobRepository) job.JobService {
	return &JobServiceImpl{JobRepository: repo}
}

// List implements job.JobService.
func (s *JobServiceImpl) List(ctx context.Context, filter job.ListFilter) (job.ListResponse, error) {
	filter.Normalize()

	items, total, err := s.JobRepository.List(ctx, filter)
	if err != nil {
		return job.ListResponse{}, err
	}

	resp := job.ListResponse{
		Items: make([]job.JobResponse, 0, len(items)),
		Pagination: job.Pagination{
			TotalItems:   total,
			TotalPages:   int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
			CurrentPage:  filter.Page,
			ItemsPerPage: filter.Limit,
		},
	}
	if resp.Pagination.TotalPages < 1 {
		resp.Pagination.TotalPages = 1
	}
	for _, j := range items {
		resp.Items = append(resp.Items, job.NewJobResponse(j))
	}

	return resp, nil
}

func jobFromRequest(req job.UpsertRequest) job.Job {
	status := job.Status(req.Status)
	if status == "" {
		status = job.StatusActive
	}
	return job.Job{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		AmountPerMonth: req.AmountPerMonth,
		Status:         status,
		Tags:           req.Tags,
	}
}

// Create implements job.JobService.
func (s *JobServiceImpl) Create(ctx context.Context, req job.UpsertRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	created, err := s.JobRepository.Create(ctx, jobFromRequest(req))
	if err != nil {
		return job.JobResponse{}, err
	}

	return job.NewJobResponse(created), nil
}

// Update implements job.JobService.
func (s *JobServiceImpl) Update(ctx context.Context, id string, req job.UpsertRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	existing, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}

	updated := jobFromRequest(req)
	updated.ID = existing.ID

	if err := s.JobRepository.Update(ctx, updated); err != nil {
		return job.JobResponse{}, err
	}

	return job.NewJobResponse(updated), nil
}

// Delete implements job.JobService.
func (s *JobServiceImpl) Delete(ctx context.Context, id string) error {
	return s.JobRepository.Delete(ctx, id)
}
