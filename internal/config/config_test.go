package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoadAgentIDDefaults(t *testing.T) {
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("AGENT_API_URL", "http://localhost:9000")
	os.Setenv("SCHEDULER_API_URL", "http://localhost:9001")
	os.Setenv("STORAGE_BACKEND", "redis")
	defer func() {
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("AGENT_API_URL")
		os.Unsetenv("SCHEDULER_API_URL")
		os.Unsetenv("STORAGE_BACKEND")
	}()

	cfg := Load()

	if cfg.ManagerAgentID != defaultManagerAgentID {
		t.Errorf("Expected default manager agent ID, got %q", cfg.ManagerAgentID)
	}
	if cfg.ScheduleID != defaultScheduleID {
		t.Errorf("Expected default schedule ID, got %q", cfg.ScheduleID)
	}
	if cfg.LogFetchLimit != 5 {
		t.Errorf("Expected default log fetch limit 5, got %d", cfg.LogFetchLimit)
	}
}
