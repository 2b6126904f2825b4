package services

import (
	"context"
	"errors"
	"testing"

	"arxiv-monitor-backend/internal/models"
)

type fakeScheduleAPI struct {
	listResult *ListSchedulesResult
	listErr    error
	getResult  *ScheduleResult
	getErr     error
	mutate     *MutateResult
	mutateErr  error
	logs       *LogsResult
	logsErr    error

	listCalls   int
	listAgentID string
	getCalls    int
	pauseCalls  int
	resumeCalls int
	triggers    int
}

func (f *fakeScheduleAPI) ListSchedules(ctx context.Context, agentID string) (*ListSchedulesResult, error) {
	f.listCalls++
	f.listAgentID = agentID
	return f.listResult, f.listErr
}

func (f *fakeScheduleAPI) GetSchedule(ctx context.Context, id string) (*ScheduleResult, error) {
	f.getCalls++
	return f.getResult, f.getErr
}

func (f *fakeScheduleAPI) PauseSchedule(ctx context.Context, id string) (*MutateResult, error) {
	f.pauseCalls++
	return f.mutate, f.mutateErr
}

func (f *fakeScheduleAPI) ResumeSchedule(ctx context.Context, id string) (*MutateResult, error) {
	f.resumeCalls++
	return f.mutate, f.mutateErr
}

func (f *fakeScheduleAPI) TriggerSchedule(ctx context.Context, id string) (*MutateResult, error) {
	f.triggers++
	return f.mutate, f.mutateErr
}

func (f *fakeScheduleAPI) GetScheduleLogs(ctx context.Context, id string, limit int) (*LogsResult, error) {
	return f.logs, f.logsErr
}

func TestResolvePrefersKnownScheduleID(t *testing.T) {
	api := &fakeScheduleAPI{
		listResult: &ListSchedulesResult{
			Success: true,
			Schedules: []models.Schedule{
				{ID: "other-1", IsActive: true},
				{ID: "sched-1", IsActive: false},
			},
		},
	}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	schedule, err := svc.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if schedule.ID != "sched-1" {
		t.Errorf("Expected sched-1, got %s", schedule.ID)
	}
	if api.getCalls != 0 {
		t.Error("Expected no direct fetch when the list succeeds")
	}
}

func TestResolveListsByOwningAgent(t *testing.T) {
	// The schedule registry indexes schedules under the manager agent that
	// owns them; the list filter must carry that id or it matches nothing.
	api := &fakeScheduleAPI{
		listResult: &ListSchedulesResult{
			Success:   true,
			Schedules: []models.Schedule{{ID: "sched-1"}},
		},
	}
	svc := NewScheduleService(api, "manager-agent", "sched-1", 10)

	if _, err := svc.Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if api.listAgentID != "manager-agent" {
		t.Errorf("Expected list filtered by owning agent id, got %q", api.listAgentID)
	}
}

func TestResolveFallsBackToFirstListed(t *testing.T) {
	api := &fakeScheduleAPI{
		listResult: &ListSchedulesResult{
			Success:   true,
			Schedules: []models.Schedule{{ID: "other-1"}, {ID: "other-2"}},
		},
	}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	schedule, err := svc.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if schedule.ID != "other-1" {
		t.Errorf("Expected first listed schedule, got %s", schedule.ID)
	}
}

func TestResolveEmptyListFallsBackToDirectFetch(t *testing.T) {
	api := &fakeScheduleAPI{
		listResult: &ListSchedulesResult{Success: true},
		getResult:  &ScheduleResult{Success: true, Schedule: &models.Schedule{ID: "sched-1", IsActive: true}},
	}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	schedule, err := svc.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if schedule.ID != "sched-1" {
		t.Errorf("Expected direct fetch result, got %s", schedule.ID)
	}
	if api.getCalls != 1 {
		t.Errorf("Expected one direct fetch, got %d", api.getCalls)
	}
}

func TestResolveUnavailableWhenBothPathsFail(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeScheduleAPI
	}{
		{
			"both requests error",
			&fakeScheduleAPI{listErr: errors.New("timeout"), getErr: errors.New("timeout")},
		},
		{
			"list empty and fetch unsuccessful",
			&fakeScheduleAPI{
				listResult: &ListSchedulesResult{Success: true},
				getResult:  &ScheduleResult{Success: false, Error: "not found"},
			},
		},
		{
			"fetch succeeds without a record",
			&fakeScheduleAPI{
				listResult: &ListSchedulesResult{Success: false},
				getResult:  &ScheduleResult{Success: true},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewScheduleService(tc.api, "agent-1", "sched-1", 10)
			if _, err := svc.Resolve(context.Background()); !errors.Is(err, ErrScheduleUnavailable) {
				t.Errorf("Expected ErrScheduleUnavailable, got %v", err)
			}
		})
	}
}

func TestViewAttachesFrequency(t *testing.T) {
	api := &fakeScheduleAPI{
		listResult: &ListSchedulesResult{
			Success:   true,
			Schedules: []models.Schedule{{ID: "sched-1", CronExpression: "0 8 * * 1"}},
		},
	}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	view, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if view.Frequency != "Weekly on Monday at 8:00 AM" {
		t.Errorf("Unexpected frequency: %q", view.Frequency)
	}
}

func TestPauseReloadsFromRegistry(t *testing.T) {
	api := &fakeScheduleAPI{
		mutate: &MutateResult{Success: true},
		listResult: &ListSchedulesResult{
			Success:   true,
			Schedules: []models.Schedule{{ID: "sched-1", IsActive: false}},
		},
	}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	result, err := svc.Pause(context.Background(), "sched-1")
	if err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if result.Status.Message != "Schedule paused successfully." {
		t.Errorf("Unexpected status message: %q", result.Status.Message)
	}
	if result.Schedule == nil || result.Schedule.IsActive {
		t.Errorf("Expected reloaded paused schedule, got %+v", result.Schedule)
	}
	if api.pauseCalls != 1 || api.listCalls != 1 {
		t.Errorf("Expected pause then reload, got pause=%d list=%d", api.pauseCalls, api.listCalls)
	}
}

func TestToggleFailureStillReloads(t *testing.T) {
	api := &fakeScheduleAPI{
		mutate: &MutateResult{Success: false, Error: "schedule is locked"},
		listResult: &ListSchedulesResult{
			Success:   true,
			Schedules: []models.Schedule{{ID: "sched-1", IsActive: true}},
		},
	}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	result, err := svc.Resume(context.Background(), "sched-1")
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if result.Status.Type != models.StatusError {
		t.Errorf("Expected error status, got %q", result.Status.Type)
	}
	if result.Status.Message != "schedule is locked" {
		t.Errorf("Expected remote error surfaced verbatim, got %q", result.Status.Message)
	}
	if result.Schedule == nil {
		t.Error("Expected reload even after a failed mutation")
	}
}

func TestToggleNetworkError(t *testing.T) {
	api := &fakeScheduleAPI{
		mutateErr: errors.New("connection refused"),
		listErr:   errors.New("connection refused"),
		getErr:    errors.New("connection refused"),
	}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	result, err := svc.Pause(context.Background(), "")
	if err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if result.Status.Message != "Network error while toggling schedule." {
		t.Errorf("Unexpected message: %q", result.Status.Message)
	}
	if result.Schedule != nil {
		t.Error("Expected no schedule when reload also fails")
	}
}

func TestTriggerDoesNotReload(t *testing.T) {
	api := &fakeScheduleAPI{mutate: &MutateResult{Success: true}}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	result, err := svc.TriggerNow(context.Background(), "")
	if err != nil {
		t.Fatalf("TriggerNow failed: %v", err)
	}
	if result.Status.Message != "Schedule triggered. The digest will be processed shortly." {
		t.Errorf("Unexpected message: %q", result.Status.Message)
	}
	if api.listCalls != 0 || api.getCalls != 0 {
		t.Error("Expected no reload after trigger")
	}
	if api.triggers != 1 {
		t.Errorf("Expected one trigger call, got %d", api.triggers)
	}
}

func TestLogsDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeScheduleAPI
	}{
		{"request error", &fakeScheduleAPI{logsErr: errors.New("timeout")}},
		{"unsuccessful result", &fakeScheduleAPI{logs: &LogsResult{Success: false}}},
		{"nil executions", &fakeScheduleAPI{logs: &LogsResult{Success: true}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewScheduleService(tc.api, "agent-1", "sched-1", 10)
			logs := svc.Logs(context.Background(), 0)
			if logs == nil {
				t.Fatal("Expected empty slice, got nil")
			}
			if len(logs) != 0 {
				t.Errorf("Expected no executions, got %d", len(logs))
			}
		})
	}
}

func TestLogsReturnsExecutions(t *testing.T) {
	api := &fakeScheduleAPI{
		logs: &LogsResult{
			Success: true,
			Executions: []models.ExecutionLog{
				{ID: "run-2", Success: true},
				{ID: "run-1", Success: false},
			},
		},
	}
	svc := NewScheduleService(api, "agent-1", "sched-1", 10)

	logs := svc.Logs(context.Background(), 25)
	if len(logs) != 2 {
		t.Fatalf("Expected 2 executions, got %d", len(logs))
	}
	if logs[0].ID != "run-2" {
		t.Errorf("Expected registry order preserved, got %s first", logs[0].ID)
	}
}
