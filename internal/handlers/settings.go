package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"arxiv-monitor-backend/internal/models"
	"arxiv-monitor-backend/internal/repository"
)

type SettingsHandler struct {
	state *repository.StateRepo
}

func NewSettingsHandler(state *repository.StateRepo) *SettingsHandler {
	return &SettingsHandler{state: state}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"email":       h.state.Email(),
		"preferences": h.state.Preferences(),
		"onboarded":   h.state.OnboardingComplete(),
	})
}

func (h *SettingsHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !strings.Contains(email, "@") {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Please enter a valid email address", r))
		return
	}

	// Empty clears the recipient; the send flow blocks until one is set.
	h.state.SetEmail(r.Context(), email)
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

// UpdatePreferences accepts a partial record. Fields absent from the request
// keep their current values; the merged record is then stored in full.
func (h *SettingsHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	merged, err := models.MergePreferences(h.state.Preferences(), body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid preferences payload", r))
		return
	}

	h.state.SetPreferences(r.Context(), merged)
	writeJSON(w, http.StatusOK, map[string]interface{}{"preferences": merged})
}
