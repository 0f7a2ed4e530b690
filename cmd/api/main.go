package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"github.com/harborhealth/scheduling-agent/internal/api/router"
	"github.com/harborhealth/scheduling-agent/internal/clinicdata"
	appconfig "github.com/harborhealth/scheduling-agent/internal/config"
	"github.com/harborhealth/scheduling-agent/internal/conversation"
	"github.com/harborhealth/scheduling-agent/internal/observability/metrics"
	"github.com/harborhealth/scheduling-agent/internal/routing"
	"github.com/harborhealth/scheduling-agent/internal/scheduling"
	"github.com/harborhealth/scheduling-agent/internal/tools"
	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

func main() {
	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting scheduling-agent API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Seed clinic reference data and the slot inventory
	now := time.Now()
	patients, providers, policies, protocols := clinicdata.Seed(now)
	dir := clinicdata.NewDirectory(patients, providers, policies, protocols)
	slots := clinicdata.GenerateSlots(providers, now, cfg.SlotHorizonDays, cfg.SlotSeed)
	engine := scheduling.NewEngine(dir, scheduling.NewSlotStore(slots), logger)
	logger.Info("clinic data seeded",
		"patients", len(patients),
		"providers", len(providers),
		"slots", len(slots),
	)

	// Chat completion client (OpenAI-compatible)
	if cfg.OpenAIAPIKey == "" {
		logger.Error("OPENAI_API_KEY is required")
		os.Exit(1)
	}
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	llmClient := openai.NewClientWithConfig(clientCfg)

	// Metrics
	registry := prometheus.NewRegistry()
	agentMetrics := metrics.NewAgentMetrics(registry)

	// Routing
	stats := routing.NewStats()
	policyRetriever := routing.NewStaticPolicyRetriever()
	intentRouter := routing.NewRouter(llmClient, stats, cfg.RouterModel,
		routing.Agent(cfg.DefaultAgent), cfg.LLMTimeout, logger,
		routing.WithPolicyRetriever(policyRetriever))

	// Tool dispatch
	dispatcher := tools.NewDispatcher(engine, logger, agentMetrics)

	// Conversation history persistence
	var history conversation.HistoryStore
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		history = conversation.NewRedisHistoryStore(redisClient, cfg.SessionTTL)
		logger.Info("using redis conversation history", "addr", cfg.RedisAddr)
	} else {
		history = conversation.NewMemoryHistoryStore()
		logger.Info("using in-memory conversation history")
	}

	// Conversation service
	service := conversation.NewAgentService(intentRouter, llmClient, dispatcher, history,
		agentMetrics, conversation.ServiceConfig{
			Model:           cfg.AgentModel,
			MaxIterations:   cfg.MaxToolIterations,
			CallTimeout:     cfg.LLMTimeout,
			HistoryWindow:   cfg.HistoryWindow,
			PolicyRetriever: policyRetriever,
		}, logger)

	// Setup router
	routerCfg := &router.Config{
		Logger:              logger,
		ConversationHandler: conversation.NewHandler(service, logger),
		RoutingHandler:      routing.NewHandler(intentRouter, stats, logger),
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins:  cfg.AllowedOrigins,
		RateLimitRPS:        cfg.RateLimitRPS,
		RateLimitBurst:      cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
