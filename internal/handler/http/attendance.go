package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	BreakStart(w http.ResponseWriter, r *http.Request)
	BreakEnd(w http.ResponseWriter, r *http.Request)
	MyToday(w http.ResponseWriter, r *http.Request)
	PendingCheckouts(w http.ResponseWriter, r *http.Request)
	SetCheckOut(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// checkOutPayload is the wire shape of a check-out call. Warning outcomes are
// 200s carrying the outcome tag; only status "closed" includes the record.
type checkOutPayload struct {
	Status      attendance.CheckOutOutcome     `json:"status"`
	WorkEndTime string                         `json:"workEndTime,omitempty"`
	Attendance  *attendance.AttendanceResponse `json:"attendance,omitempty"`
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest

	// An empty body is a valid first (unconfirmed) call.
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("CheckOut decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payload := checkOutPayload{
		Status:      result.Outcome,
		WorkEndTime: result.WorkEndTime,
		Attendance:  result.Attendance,
	}

	switch result.Outcome {
	case attendance.OutcomeClosed:
		response.SuccessWithMessage(w, "Checked out successfully", payload)
	default:
		response.Success(w, payload)
	}
}

// BreakStart implements AttendanceHandler.
func (h *attendanceHandlerImpl) BreakStart(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.BreakStart(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", result)
}

// BreakEnd implements AttendanceHandler.
func (h *attendanceHandlerImpl) BreakEnd(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.BreakEnd(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", result)
}

// MyToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetMyToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PendingCheckouts implements AttendanceHandler.
func (h *attendanceHandlerImpl) PendingCheckouts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.attendanceService.ListPendingCheckouts(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// SetCheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetCheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetCheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetCheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SetCheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out recorded", result)
}

// ListToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := attendance.TodayListFilter{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
	}

	result, err := h.attendanceService.ListToday(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
