package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/harborhealth/scheduling-agent/internal/conversation"
	httpmiddleware "github.com/harborhealth/scheduling-agent/internal/http/middleware"
	"github.com/harborhealth/scheduling-agent/internal/routing"
	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	ConversationHandler *conversation.Handler
	RoutingHandler      *routing.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
	RateLimitRPS        float64
	RateLimitBurst      int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints (health checks, metrics)
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Agent endpoints. Every conversation turn and routing call can reach
	// the upstream model, so these carry the rate limit.
	r.Group(func(api chi.Router) {
		if cfg.RateLimitRPS > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		}

		if cfg.ConversationHandler != nil {
			api.Route("/conversations", func(r chi.Router) {
				r.Post("/start", cfg.ConversationHandler.Start)
				r.Post("/message", cfg.ConversationHandler.Message)
				r.Get("/{conversationID}/history", cfg.ConversationHandler.History)
				r.Post("/{conversationID}/end", cfg.ConversationHandler.End)
			})
		}

		if cfg.RoutingHandler != nil {
			api.Route("/route", func(r chi.Router) {
				r.Post("/", cfg.RoutingHandler.Route)
				r.Post("/batch", cfg.RoutingHandler.RouteBatch)
				r.Get("/stats", cfg.RoutingHandler.Stats)
				r.Delete("/stats", cfg.RoutingHandler.ResetStats)
			})
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
