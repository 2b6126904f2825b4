package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"arxiv-monitor-backend/internal/models"
	"arxiv-monitor-backend/internal/repository"
)

// ErrDigestInFlight is returned while a previous digest request is still
// outstanding. Requests are never queued; the caller re-triggers manually.
var ErrDigestInFlight = errors.New("a digest request is already in progress")

// Timestamp layout for the "last digest sent" slot.
const lastDigestLayout = "1/2/2006, 3:04:05 PM"

type agentInvoker interface {
	Invoke(ctx context.Context, message, agentID string) (*AgentResult, error)
}

// StatusPublisher pushes digest flow transitions to the dashboard's status
// channel. Implementations must be safe for concurrent use.
type StatusPublisher interface {
	PublishDigestStatus(ctx context.Context, update models.DigestStatusUpdate)
}

// DigestOutcome is the user-visible result of a preview or send request.
// Digest is nil unless the agent returned a parseable payload.
type DigestOutcome struct {
	Status models.StatusMessage   `json:"status"`
	Digest *models.ManagerResponse `json:"digest,omitempty"`
}

// DigestService runs the digest orchestration flow: it composes the
// natural-language instruction for the manager agent, invokes it, normalizes
// the result and tracks the last digest shown this session. At most one
// request is in flight at a time, enforced with a single token.
type DigestService struct {
	agent          agentInvoker
	state          *repository.StateRepo
	publisher      StatusPublisher
	managerAgentID string

	token chan struct{}

	mu     sync.RWMutex
	latest *models.ManagerResponse

	now func() time.Time
}

func NewDigestService(agent agentInvoker, state *repository.StateRepo, publisher StatusPublisher, managerAgentID string) *DigestService {
	token := make(chan struct{}, 1)
	token <- struct{}{}
	return &DigestService{
		agent:          agent,
		state:          state,
		publisher:      publisher,
		managerAgentID: managerAgentID,
		token:          token,
		now:            time.Now,
	}
}

// Preview searches the tracked topics without sending an email.
func (s *DigestService) Preview(ctx context.Context) (*DigestOutcome, error) {
	topics := s.state.Topics()
	if len(topics) == 0 {
		return s.localFailure("preview", "Add at least one topic before requesting a digest."), nil
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	message := "Search ArXiv for the following topics: [" + strings.Join(topics, ", ") + "]. Mode: preview_only. Do NOT send email."
	return s.run(ctx, "preview", message, func(digest *models.ManagerResponse) models.StatusMessage {
		return models.StatusMessage{
			Type:    models.StatusSuccess,
			Message: fmt.Sprintf("Found %d papers across %d topics.", digest.TotalPapersFound, digest.TopicsSearched),
		}
	}), nil
}

// Send searches the tracked topics and asks the email agent to deliver a full
// digest to the configured recipient.
func (s *DigestService) Send(ctx context.Context) (*DigestOutcome, error) {
	topics := s.state.Topics()
	if len(topics) == 0 {
		return s.localFailure("send", "Add at least one topic before requesting a digest."), nil
	}
	email := s.state.Email()
	if email == "" {
		return s.localFailure("send", "Please set your email address in Settings before sending a digest."), nil
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	prefs := s.state.Preferences()
	message := "Search ArXiv for the following topics: [" + strings.Join(topics, ", ") + "]. Mode: full_digest." +
		" Send email digest to: " + email + "." +
		" Include abstracts: " + yesNo(prefs.IncludeAbstracts) + "." +
		" Include key insights: " + yesNo(prefs.IncludeInsights) + "." +
		" Include author names: " + yesNo(prefs.IncludeAuthors) + "."

	return s.run(ctx, "send", message, func(digest *models.ManagerResponse) models.StatusMessage {
		// The timestamp records the last attempted full send, not confirmed
		// delivery, so it is written regardless of email_sent.
		s.state.SetLastDigest(ctx, s.now().Format(lastDigestLayout))

		if digest.EmailSent {
			return models.StatusMessage{
				Type:    models.StatusSuccess,
				Message: fmt.Sprintf("Digest sent successfully to %s. %d papers included.", email, digest.TotalPapersFound),
			}
		}
		emailStatus := digest.EmailStatus
		if emailStatus == "" {
			emailStatus = "unknown"
		}
		return models.StatusMessage{
			Type:    models.StatusInfo,
			Message: fmt.Sprintf("Digest prepared with %d papers. Email status: %s", digest.TotalPapersFound, emailStatus),
		}
	}), nil
}

// Latest returns the digest currently displayed for this session, if any.
func (s *DigestService) Latest() *models.ManagerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// run performs the remote call and routes the result into a status message.
// onDigest builds the success/info status for a parseable payload.
func (s *DigestService) run(ctx context.Context, intent, message string, onDigest func(*models.ManagerResponse) models.StatusMessage) *DigestOutcome {
	s.publish(ctx, models.DigestStatusUpdate{State: models.DigestStateRequesting, Intent: intent})

	result, err := s.agent.Invoke(ctx, message, s.managerAgentID)
	if err != nil {
		log.Printf("digest: agent call failed: %v", err)
		return s.remoteFailure(ctx, intent, "Network error. Please check your connection and try again.")
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			if intent == "send" {
				msg = "Failed to send digest. Please try again."
			} else {
				msg = "Failed to search ArXiv. Please try again."
			}
		}
		return s.remoteFailure(ctx, intent, msg)
	}

	digest := ParseManagerResponse(result.Response)
	if digest == nil {
		return s.remoteFailure(ctx, intent, "Failed to parse the agent response. The response format was unexpected.")
	}

	s.mu.Lock()
	s.latest = digest
	s.mu.Unlock()

	status := onDigest(digest)
	s.publish(ctx, models.DigestStatusUpdate{State: models.DigestStateSucceeded, Intent: intent, Status: &status})
	return &DigestOutcome{Status: status, Digest: digest}
}

func (s *DigestService) localFailure(intent, message string) *DigestOutcome {
	status := models.StatusMessage{Type: models.StatusError, Message: message}
	return &DigestOutcome{Status: status}
}

func (s *DigestService) remoteFailure(ctx context.Context, intent, message string) *DigestOutcome {
	status := models.StatusMessage{Type: models.StatusError, Message: message}
	s.publish(ctx, models.DigestStatusUpdate{State: models.DigestStateFailed, Intent: intent, Status: &status})
	return &DigestOutcome{Status: status}
}

func (s *DigestService) publish(ctx context.Context, update models.DigestStatusUpdate) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishDigestStatus(ctx, update)
}

func (s *DigestService) acquire() error {
	select {
	case <-s.token:
		return nil
	default:
		return ErrDigestInFlight
	}
}

func (s *DigestService) release() {
	s.token <- struct{}{}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
