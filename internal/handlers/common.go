package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"arxiv-monitor-backend/internal/models"
	"arxiv-monitor-backend/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleServiceError maps the service sentinels onto HTTP statuses. In-flight
// guards surface as 409 so the dashboard can keep the triggering control
// disabled; an unreconcilable schedule surfaces as 502 with a retryable code.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrDigestInFlight):
		writeJSON(w, http.StatusConflict, errorResp("DIGEST_IN_FLIGHT", err.Error(), r))
	case errors.Is(err, services.ErrScheduleActionInFlight):
		writeJSON(w, http.StatusConflict, errorResp("SCHEDULE_ACTION_IN_FLIGHT", err.Error(), r))
	case errors.Is(err, services.ErrScheduleUnavailable):
		writeJSON(w, http.StatusBadGateway, errorResp("SCHEDULE_UNAVAILABLE", "Could not load schedule data. Please retry.", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Something went wrong. Please try again.", r))
	}
}
