package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"arxiv-monitor-backend/internal/models"
)

// ErrScheduleActionInFlight is returned while the same kind of schedule
// action is still outstanding.
var ErrScheduleActionInFlight = errors.New("a schedule action is already in progress")

// ErrScheduleUnavailable marks a failed reconcile; the dashboard shows a
// retryable error state for it.
var ErrScheduleUnavailable = errors.New("could not load schedule data")

// SchedulerClient talks to the remote cron-like scheduling service. All
// schedule records are owned remotely; this client never caches.
type SchedulerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewSchedulerClient(baseURL string) *SchedulerClient {
	return &SchedulerClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type ListSchedulesResult struct {
	Success   bool              `json:"success"`
	Schedules []models.Schedule `json:"schedules,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type ScheduleResult struct {
	Success  bool             `json:"success"`
	Schedule *models.Schedule `json:"schedule,omitempty"`
	Error    string           `json:"error,omitempty"`
}

type MutateResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type LogsResult struct {
	Success    bool                  `json:"success"`
	Executions []models.ExecutionLog `json:"executions,omitempty"`
}

func (c *SchedulerClient) ListSchedules(ctx context.Context, agentID string) (*ListSchedulesResult, error) {
	result := &ListSchedulesResult{}
	query := url.Values{"agent_id": {agentID}}
	err := c.get(ctx, "/schedules?"+query.Encode(), result)
	return result, err
}

func (c *SchedulerClient) GetSchedule(ctx context.Context, id string) (*ScheduleResult, error) {
	result := &ScheduleResult{}
	err := c.get(ctx, "/schedules/"+url.PathEscape(id), result)
	return result, err
}

func (c *SchedulerClient) PauseSchedule(ctx context.Context, id string) (*MutateResult, error) {
	return c.mutate(ctx, id, "pause")
}

func (c *SchedulerClient) ResumeSchedule(ctx context.Context, id string) (*MutateResult, error) {
	return c.mutate(ctx, id, "resume")
}

func (c *SchedulerClient) TriggerSchedule(ctx context.Context, id string) (*MutateResult, error) {
	return c.mutate(ctx, id, "trigger")
}

func (c *SchedulerClient) GetScheduleLogs(ctx context.Context, id string, limit int) (*LogsResult, error) {
	result := &LogsResult{}
	path := fmt.Sprintf("/schedules/%s/executions?limit=%s", url.PathEscape(id), strconv.Itoa(limit))
	err := c.get(ctx, path, result)
	return result, err
}

func (c *SchedulerClient) mutate(ctx context.Context, id, action string) (*MutateResult, error) {
	result := &MutateResult{}
	path := fmt.Sprintf("/schedules/%s/%s", url.PathEscape(id), action)
	err := c.do(ctx, http.MethodPost, path, result)
	return result, err
}

func (c *SchedulerClient) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, out)
}

func (c *SchedulerClient) do(ctx context.Context, method, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build scheduler request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scheduler request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("scheduler returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode scheduler response: %w", err)
	}
	return nil
}

// ScheduleAPI is the slice of the scheduler client the flow needs.
type ScheduleAPI interface {
	ListSchedules(ctx context.Context, agentID string) (*ListSchedulesResult, error)
	GetSchedule(ctx context.Context, id string) (*ScheduleResult, error)
	PauseSchedule(ctx context.Context, id string) (*MutateResult, error)
	ResumeSchedule(ctx context.Context, id string) (*MutateResult, error)
	TriggerSchedule(ctx context.Context, id string) (*MutateResult, error)
	GetScheduleLogs(ctx context.Context, id string, limit int) (*LogsResult, error)
}

// ScheduleView is what the settings screen renders for the digest schedule.
type ScheduleView struct {
	Schedule  *models.Schedule `json:"schedule"`
	Frequency string           `json:"frequency,omitempty"`
}

// ScheduleActionResult reports a pause/resume/trigger outcome. Schedule
// carries the re-fetched record for actions that reload (pause/resume).
type ScheduleActionResult struct {
	Status   models.StatusMessage `json:"status"`
	Schedule *models.Schedule     `json:"schedule,omitempty"`
}

// ScheduleService reconciles and mutates the remote digest schedule. The
// schedule registry stays the source of truth: after pause/resume the record
// is re-fetched instead of flipping local state optimistically.
type ScheduleService struct {
	client     ScheduleAPI
	agentID    string
	scheduleID string
	logLimit   int

	toggleToken  chan struct{}
	triggerToken chan struct{}
}

func NewScheduleService(client ScheduleAPI, agentID, scheduleID string, logLimit int) *ScheduleService {
	toggle := make(chan struct{}, 1)
	toggle <- struct{}{}
	trigger := make(chan struct{}, 1)
	trigger <- struct{}{}
	return &ScheduleService{
		client:       client,
		agentID:      agentID,
		scheduleID:   scheduleID,
		logLimit:     logLimit,
		toggleToken:  toggle,
		triggerToken: trigger,
	}
}

// Resolve determines which schedule record applies: the owning agent's list
// is preferred (matching the known schedule id, else the first entry), with a
// direct fetch by id as fallback when the list is empty or fails.
func (s *ScheduleService) Resolve(ctx context.Context) (*models.Schedule, error) {
	list, err := s.client.ListSchedules(ctx, s.agentID)
	if err == nil && list.Success && len(list.Schedules) > 0 {
		for i := range list.Schedules {
			if list.Schedules[i].ID == s.scheduleID {
				return &list.Schedules[i], nil
			}
		}
		return &list.Schedules[0], nil
	}
	if err != nil {
		log.Printf("schedule: list failed, falling back to direct fetch: %v", err)
	}

	single, err := s.client.GetSchedule(ctx, s.scheduleID)
	if err != nil {
		log.Printf("schedule: direct fetch failed: %v", err)
		return nil, ErrScheduleUnavailable
	}
	if !single.Success || single.Schedule == nil {
		return nil, ErrScheduleUnavailable
	}
	return single.Schedule, nil
}

// View resolves the schedule and attaches the human-readable frequency.
func (s *ScheduleService) View(ctx context.Context) (*ScheduleView, error) {
	schedule, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	view := &ScheduleView{Schedule: schedule}
	if schedule.CronExpression != "" {
		view.Frequency = CronToHuman(schedule.CronExpression)
	}
	return view, nil
}

// Pause pauses the schedule and re-fetches the authoritative record.
func (s *ScheduleService) Pause(ctx context.Context, id string) (*ScheduleActionResult, error) {
	return s.toggle(ctx, id, "pause")
}

// Resume resumes the schedule and re-fetches the authoritative record.
func (s *ScheduleService) Resume(ctx context.Context, id string) (*ScheduleActionResult, error) {
	return s.toggle(ctx, id, "resume")
}

func (s *ScheduleService) toggle(ctx context.Context, id, action string) (*ScheduleActionResult, error) {
	select {
	case <-s.toggleToken:
	default:
		return nil, ErrScheduleActionInFlight
	}
	defer func() { s.toggleToken <- struct{}{} }()

	if id == "" {
		id = s.scheduleID
	}

	var (
		result *MutateResult
		err    error
	)
	if action == "pause" {
		result, err = s.client.PauseSchedule(ctx, id)
	} else {
		result, err = s.client.ResumeSchedule(ctx, id)
	}

	out := &ScheduleActionResult{}
	switch {
	case err != nil:
		log.Printf("schedule: %s failed: %v", action, err)
		out.Status = models.StatusMessage{Type: models.StatusError, Message: "Network error while toggling schedule."}
		return out, nil
	case result.Success:
		out.Status = models.StatusMessage{Type: models.StatusSuccess, Message: "Schedule " + action + "d successfully."}
	default:
		msg := result.Error
		if msg == "" {
			msg = "Failed to " + action + " schedule."
		}
		out.Status = models.StatusMessage{Type: models.StatusError, Message: msg}
	}

	// Reload so displayed status reflects the remote registry, whether or
	// not the mutation reported success.
	if schedule, reloadErr := s.Resolve(ctx); reloadErr == nil {
		out.Schedule = schedule
	}
	return out, nil
}

// TriggerNow runs the schedule immediately. No reload follows: triggering
// does not change the active/paused state.
func (s *ScheduleService) TriggerNow(ctx context.Context, id string) (*ScheduleActionResult, error) {
	select {
	case <-s.triggerToken:
	default:
		return nil, ErrScheduleActionInFlight
	}
	defer func() { s.triggerToken <- struct{}{} }()

	if id == "" {
		id = s.scheduleID
	}

	result, err := s.client.TriggerSchedule(ctx, id)
	out := &ScheduleActionResult{}
	switch {
	case err != nil:
		log.Printf("schedule: trigger failed: %v", err)
		out.Status = models.StatusMessage{Type: models.StatusError, Message: "Network error while triggering schedule."}
	case result.Success:
		out.Status = models.StatusMessage{Type: models.StatusSuccess, Message: "Schedule triggered. The digest will be processed shortly."}
	default:
		msg := result.Error
		if msg == "" {
			msg = "Failed to trigger schedule."
		}
		out.Status = models.StatusMessage{Type: models.StatusError, Message: msg}
	}
	return out, nil
}

// Logs fetches the most recent executions. Failures degrade to an empty
// page; the dashboard keeps whatever it had.
func (s *ScheduleService) Logs(ctx context.Context, limit int) []models.ExecutionLog {
	if limit <= 0 {
		limit = s.logLimit
	}

	result, err := s.client.GetScheduleLogs(ctx, s.scheduleID, limit)
	if err != nil {
		log.Printf("schedule: failed to fetch execution logs: %v", err)
		return []models.ExecutionLog{}
	}
	if !result.Success || result.Executions == nil {
		return []models.ExecutionLog{}
	}
	return result.Executions
}
