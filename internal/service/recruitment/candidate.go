package recruitment

import (
	"context"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/candidate"
)

type CandidateServiceImpl struct {
	candidate.CandidateRepository
}

func NewCandidateService(repo candidate.CandidateRepository) candidate.CandidateService {
	return &CandidateServiceImpl{CandidateRepository: repo}
}

// List implements candidate.CandidateService.
func (s *CandidateServiceImpl) List(ctx context.Context, filter candidate.ListFilter) (candidate.ListResponse, error) {
	filter.Normalize()

	items, total, err := s.CandidateRepository.List(ctx, filter)
	if err != nil {
		return candidate.ListResponse{}, err
	}

	resp := candidate.ListResponse{
		Items: make([]candidate.CandidateResponse, 0, len(items)),
		Pagination: candidate.Pagination{
			TotalItems:   total,
			TotalPages:   int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
			CurrentPage:  filter.Page,
			ItemsPerPage: filter.Limit,
		},
	}
	if resp.Pagination.TotalPages < 1 {
		resp.Pagination.TotalPages = 1
	}
	for _, c := range items {
		resp.Items = append(resp.Items, candidate.NewCandidateResponse(c))
	}

	return resp, nil
}

func candidateFromRequest(req candidate.UpsertRequest) candidate.Candidate {
	status := candidate.Status(req.Status)
	if status == "" {
		status = candidate.StatusInProcess
	}
	return candidate.Candidate{
		Name:        req.Name,
		AvatarURL:   req.AvatarURL,
		AppliedFor:  req.AppliedFor,
		AppliedDate: req.AppliedDate,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Status:      status,
	}
}

// Create implements candidate.CandidateService.
func (s *CandidateServiceImpl) Create(ctx context.Context, req candidate.UpsertRequest) (candidate.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return candidate.CandidateResponse{}, err
	}

	created, err := s.CandidateRepository.Create(ctx, candidateFromRequest(req))
	if err != nil {
		return candidate.CandidateResponse{}, err
	}

	return candidate.NewCandidateResponse(created), nil
}

// Update implements candidate.CandidateService.
func (s *CandidateServiceImpl) Update(ctx context.Context, id string, req candidate.UpsertRequest) (candidate.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return candidate.CandidateResponse{}, err
	}

	existing, err := s.CandidateRepository.GetByID(ctx, id)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}

	updated := candidateFromRequest(req)
	updated.ID = existing.ID

	if err := s.CandidateRepository.Update(ctx, updated); err != nil {
		return candidate.CandidateResponse{}, err
	}

	return candidate.NewCandidateResponse(updated), nil
}

// Delete implements candidate.CandidateService.
func (s *CandidateServiceImpl) Delete(ctx context.Context, id string) error {
	return s.CandidateRepository.Delete(ctx, id)
}
