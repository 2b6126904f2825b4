package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default identifiers of the remote agents and the weekly schedule. These are
// owned by the remote platform; overridable via env for other deployments.
const (
	defaultManagerAgentID = "6997cf886d697c9f3c2dac7f"
	defaultArxivAgentID   = "6997cf73b750be5d2dde15ec"
	defaultEmailAgentID   = "6997cf74ec13e82222688966"
	defaultScheduleID     = "6997cf8d399dfadeac37c226"
)

type Config struct {
	// Server
	Port string
	Env  string

	// State storage
	StorageBackend string // "postgres" | "redis"
	DatabaseURL    string
	RedisURL       string

	// Agent platform
	AgentAPIURL string
	AgentAPIKey string

	// Scheduler service
	SchedulerAPIURL string

	// Remote identifiers
	ManagerAgentID string
	ArxivAgentID   string
	EmailAgentID   string
	ScheduleID     string

	// Execution log page size
	LogFetchLimit int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		StorageBackend:  getEnvOrDefault("STORAGE_BACKEND", "postgres"),
		DatabaseURL:     getEnvOrDefault("DATABASE_URL", ""),
		RedisURL:        mustGetEnv("REDIS_URL"),
		AgentAPIURL:     mustGetEnv("AGENT_API_URL"),
		AgentAPIKey:     getEnvOrDefault("AGENT_API_KEY", ""),
		SchedulerAPIURL: mustGetEnv("SCHEDULER_API_URL"),
		ManagerAgentID:  getEnvOrDefault("MANAGER_AGENT_ID", defaultManagerAgentID),
		ArxivAgentID:    getEnvOrDefault("ARXIV_AGENT_ID", defaultArxivAgentID),
		EmailAgentID:    getEnvOrDefault("EMAIL_AGENT_ID", defaultEmailAgentID),
		ScheduleID:      getEnvOrDefault("SCHEDULE_ID", defaultScheduleID),
		LogFetchLimit:   getEnvAsIntOrDefault("LOG_FETCH_LIMIT", 5),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.StorageBackend == "postgres" && cfg.DatabaseURL == "" {
		panic("DATABASE_URL is required when STORAGE_BACKEND=postgres")
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
