package handlers

import (
	"encoding/json"
	"net/http"

	"arxiv-monitor-backend/internal/repository"
)

type OnboardingHandler struct {
	state *repository.StateRepo
}

func NewOnboardingHandler(state *repository.StateRepo) *OnboardingHandler {
	return &OnboardingHandler{state: state}
}

// Complete finishes the first-run wizard: the selected topics are bulk-added
// and the onboarding flag is set so the wizard never reappears.
func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topics []string `json:"topics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	added := h.state.AddTopics(r.Context(), req.Topics)
	h.state.SetOnboardingComplete(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"added":     added,
		"topics":    h.state.Topics(),
		"onboarded": true,
	})
}
