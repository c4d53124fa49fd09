package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
	"github.com/talentra-hq/hrms-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetWorkHours(w http.ResponseWriter, r *http.Request)
	UpdateWorkHours(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetWorkHours implements SettingsHandler.
func (h *settingsHandlerImpl) GetWorkHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetWorkHours(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateWorkHours implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateWorkHours(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateWorkHoursRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWorkHours decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateWorkHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work hours updated", result)
}
