package handlers

import (
	"encoding/json"
	"net/http"

	"arxiv-monitor-backend/internal/models"
	"arxiv-monitor-backend/internal/repository"
)

type TopicsHandler struct {
	state *repository.StateRepo
}

func NewTopicsHandler(state *repository.StateRepo) *TopicsHandler {
	return &TopicsHandler{state: state}
}

func (h *TopicsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"topics": h.state.Topics(),
	})
}

func (h *TopicsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	added := h.state.AddTopic(r.Context(), req.Topic)
	if !added {
		// Blank after trimming, or an exact duplicate. Either way the
		// tracked list is unchanged and the dashboard just re-renders it.
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"added":  false,
			"topics": h.state.Topics(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"added":  true,
		"topics": h.state.Topics(),
	})
}

func (h *TopicsHandler) AddBulk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topics []string `json:"topics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	added := h.state.AddTopics(r.Context(), req.Topics)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"added":  added,
		"topics": h.state.Topics(),
	})
}

func (h *TopicsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	removed := h.state.RemoveTopic(r.Context(), req.Topic)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"removed": removed,
		"topics":  h.state.Topics(),
	})
}

func (h *TopicsHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"groups": models.SuggestedTopics(),
	})
}
