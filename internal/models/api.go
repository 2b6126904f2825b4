package models

// Status message types shown on the dashboard.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusInfo    = "info"
)

// StatusMessage is the transient banner shown after an action completes.
type StatusMessage struct {
	Type    string `json:"type"` // "success" | "error" | "info"
	Message string `json:"message"`
}

type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// WSMessage is the envelope pushed to dashboard WebSocket clients.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Digest flow states pushed over the status channel. Clients treat anything
// outside an active flow as idle; that state is never published.
const (
	DigestStateRequesting = "requesting"
	DigestStateSucceeded  = "succeeded"
	DigestStateFailed     = "failed"
)

// DigestStatusUpdate reports a digest flow transition.
type DigestStatusUpdate struct {
	State  string         `json:"state"`
	Intent string         `json:"intent,omitempty"` // "preview" | "send"
	Status *StatusMessage `json:"status,omitempty"`
}
