package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"arxiv-monitor-backend/internal/handlers"
	"arxiv-monitor-backend/internal/middleware"
	"arxiv-monitor-backend/internal/websocket"
)

func New(
	topicsHandler *handlers.TopicsHandler,
	settingsHandler *handlers.SettingsHandler,
	digestHandler *handlers.DigestHandler,
	scheduleHandler *handlers.ScheduleHandler,
	dashboardHandler *handlers.DashboardHandler,
	onboardingHandler *handlers.OnboardingHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Digest rate limiter (10 req/min per IP); digest runs are expensive on
	// the agent side, everything else is cheap local state.
	digestLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", topicsHandler.List)
			r.Post("/", topicsHandler.Add)
			r.Post("/bulk", topicsHandler.AddBulk)
			r.Delete("/", topicsHandler.Remove)
			r.Get("/suggestions", topicsHandler.Suggestions)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.Get)
			r.Put("/email", settingsHandler.UpdateEmail)
			r.Put("/preferences", settingsHandler.UpdatePreferences)
		})

		r.Route("/digest", func(r chi.Router) {
			r.Get("/latest", digestHandler.Latest)
			r.Get("/sample", digestHandler.Sample)

			r.Group(func(r chi.Router) {
				r.Use(digestLimiter.Middleware)
				r.Post("/preview", digestHandler.Preview)
				r.Post("/send", digestHandler.Send)
			})
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", scheduleHandler.Get)
			r.Post("/pause", scheduleHandler.Pause)
			r.Post("/resume", scheduleHandler.Resume)
			r.Post("/trigger", scheduleHandler.Trigger)
			r.Get("/logs", scheduleHandler.Logs)
		})

		r.Get("/dashboard/summary", dashboardHandler.Summary)

		r.Post("/onboarding/complete", onboardingHandler.Complete)

		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
