package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"arxiv-monitor-backend/internal/services"
)

type ScheduleHandler struct {
	schedule *services.ScheduleService
}

func NewScheduleHandler(schedule *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.schedule.View(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *ScheduleHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.schedule.Pause)
}

func (h *ScheduleHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.schedule.Resume)
}

func (h *ScheduleHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.schedule.TriggerNow)
}

func (h *ScheduleHandler) mutate(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id string) (*services.ScheduleActionResult, error)) {
	var req struct {
		ScheduleID string `json:"schedule_id"`
	}
	// Body is optional; the configured schedule id is the default target.
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	result, err := action(r.Context(), req.ScheduleID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ScheduleHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	logs := h.schedule.Logs(r.Context(), limit)
	writeJSON(w, http.StatusOK, map[string]interface{}{"executions": logs})
}
