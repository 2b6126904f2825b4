package handlers

import (
	"net/http"

	"arxiv-monitor-backend/internal/models"
	"arxiv-monitor-backend/internal/services"
)

type DigestHandler struct {
	digest *services.DigestService
}

func NewDigestHandler(digest *services.DigestService) *DigestHandler {
	return &DigestHandler{digest: digest}
}

func (h *DigestHandler) Preview(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.digest.Preview(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (h *DigestHandler) Send(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.digest.Send(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// Latest returns the digest currently on display for this session. The
// digest is session state, not history; a restart clears it.
func (h *DigestHandler) Latest(w http.ResponseWriter, r *http.Request) {
	latest := h.digest.Latest()
	if latest == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"digest": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"digest": latest})
}

// Sample serves the canned demo digest so the dashboard can render a
// populated view before any real search has run.
func (h *DigestHandler) Sample(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"digest": models.SampleResponse()})
}
