package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/candidate"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/job"
	"github.com/talentra-hq/hrms-backend-go/internal/handler/http/response"
)

// RecruitmentHandler covers both halves of the hiring pipeline: job postings
// and the candidates applying to them.
type RecruitmentHandler interface {
	ListCandidates(w http.ResponseWriter, r *http.Request)
	CreateCandidate(w http.ResponseWriter, r *http.Request)
	UpdateCandidate(w http.ResponseWriter, r *http.Request)
	DeleteCandidate(w http.ResponseWriter, r *http.Request)

	ListJobs(w http.ResponseWriter, r *http.Request)
	CreateJob(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	candidateService candidate.CandidateService
	jobService       job.JobService
}

func NewRecruitmentHandler(candidateService candidate.CandidateService, jobService job.JobService) RecruitmentHandler {
	return &recruitmentHandlerImpl{
		candidateService: candidateService,
		jobService:       jobService,
	}
}

// ListCandidates implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := candidate.ListFilter{
		Page:   page,
		Limit:  limit,
		Status: q.Get("status"),
		Search: q.Get("search"),
	}

	result, err := h.candidateService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateCandidate implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req candidate.UpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create candidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.candidateService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate created successfully", result)
}

// UpdateCandidate implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	var req candidate.UpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update candidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.candidateService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate updated successfully", result)
}

// DeleteCandidate implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := h.candidateService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate deleted successfully", nil)
}

// ListJobs implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := job.ListFilter{
		Page:   page,
		Limit:  limit,
		Status: q.Get("status"),
		Search: q.Get("search"),
	}

	result, err := h.jobService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateJob implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req job.UpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.jobService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created successfully", result)
}

// UpdateJob implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req job.UpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.jobService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting updated successfully", result)
}

// DeleteJob implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting deleted successfully", nil)
}
