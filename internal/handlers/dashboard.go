package handlers

import (
	"net/http"
	"time"

	"arxiv-monitor-backend/internal/repository"
	"arxiv-monitor-backend/internal/services"
)

type DashboardHandler struct {
	state *repository.StateRepo
}

func NewDashboardHandler(state *repository.StateRepo) *DashboardHandler {
	return &DashboardHandler{state: state}
}

// Summary backs the dashboard header: how many topics are tracked, when the
// last digest went out, and when the next scheduled one lands.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	nextRun := services.NextScheduledRun(time.Now())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active_topics": len(h.state.Topics()),
		"last_digest":   h.state.LastDigest(),
		"next_run":      services.FormatNextRun(nextRun),
	})
}
