package models

// Schedule is owned by the remote scheduler service. It is cached locally
// only for display and re-fetched after every mutating action.
type Schedule struct {
	ID             string `json:"id"`
	IsActive       bool   `json:"is_active"`
	CronExpression string `json:"cron_expression"`
	Timezone       string `json:"timezone"`
	NextRunTime    string `json:"next_run_time"`
}

// ExecutionLog is a single remote run record, read-only.
type ExecutionLog struct {
	ID          string `json:"id"`
	Success     bool   `json:"success"`
	ExecutedAt  string `json:"executed_at"`
	Attempt     int    `json:"attempt"`
	MaxAttempts int    `json:"max_attempts"`
}
