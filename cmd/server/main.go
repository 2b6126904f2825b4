package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arxiv-monitor-backend/internal/config"
	"arxiv-monitor-backend/internal/database"
	"arxiv-monitor-backend/internal/handlers"
	"arxiv-monitor-backend/internal/repository"
	"arxiv-monitor-backend/internal/router"
	"arxiv-monitor-backend/internal/services"
	"arxiv-monitor-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting ArXiv Monitor Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 3: Initialize State Storage ────
	var kv repository.KV
	if cfg.StorageBackend == "postgres" {
		pool, err := database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("✗ PostgreSQL connection failed: %v", err)
		}
		defer pool.Close()
		log.Println("✓ PostgreSQL connected")

		if err := database.RunMigrations(pool, "migrations"); err != nil {
			log.Fatalf("✗ Database migration failed: %v", err)
		}
		log.Println("✓ Database migrations applied")

		kv = repository.NewPostgresKV(pool)
	} else {
		kv = repository.NewRedisKV(redisClients.Store)
		log.Println("✓ Redis state storage selected")
	}

	// ──── Step 4: Load Dashboard State ────
	state := repository.NewStateRepo(kv)
	state.Load(context.Background())
	log.Printf("✓ Dashboard state loaded (%d topics tracked)", len(state.Topics()))

	// ──── Initialize Services ────
	agentClient := services.NewAgentClient(cfg.AgentAPIURL, cfg.AgentAPIKey)
	statusPublisher := services.NewRedisStatusPublisher(redisClients.Store)
	digestService := services.NewDigestService(agentClient, state, statusPublisher, cfg.ManagerAgentID)
	schedulerClient := services.NewSchedulerClient(cfg.SchedulerAPIURL)
	// Schedules are registered under the manager agent, not the search
	// sub-agent; listing by any other id returns nothing.
	scheduleService := services.NewScheduleService(schedulerClient, cfg.ManagerAgentID, cfg.ScheduleID, cfg.LogFetchLimit)

	// ──── Initialize Handlers ────
	topicsHandler := handlers.NewTopicsHandler(state)
	settingsHandler := handlers.NewSettingsHandler(state)
	digestHandler := handlers.NewDigestHandler(digestService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	dashboardHandler := handlers.NewDashboardHandler(state)
	onboardingHandler := handlers.NewOnboardingHandler(state)

	// ──── Step 5: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub, services.StatusChannel)
	log.Println("✓ WebSocket hub started")

	// ──── Step 6: Start HTTP Server ────
	r := router.New(
		topicsHandler,
		settingsHandler,
		digestHandler,
		scheduleHandler,
		dashboardHandler,
		onboardingHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// No write timeout: digest requests stay open while the agent
		// searches, which can take minutes.
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ ArXiv Monitor Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
