package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// OpenAI-compatible completion service
	OpenAIAPIKey  string
	OpenAIBaseURL string
	AgentModel    string
	RouterModel   string
	LLMTimeout    time.Duration

	// Conversation loop
	MaxToolIterations int
	HistoryWindow     int

	// Routing
	DefaultAgent string

	// HTTP surface
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	// Session history persistence (optional; in-memory when unset)
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	SessionTTL    time.Duration

	// Seeded scheduling data
	SlotHorizonDays int
	SlotSeed        int64
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honored in development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		AgentModel:    getEnv("AGENT_MODEL", "gpt-4o-mini"),
		RouterModel:   getEnv("ROUTER_MODEL", "gpt-4o-mini"),
		LLMTimeout:    getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),

		MaxToolIterations: getEnvAsInt("MAX_TOOL_ITERATIONS", 10),
		HistoryWindow:     getEnvAsInt("HISTORY_WINDOW", 5),

		DefaultAgent: strings.ToLower(strings.TrimSpace(getEnv("DEFAULT_AGENT", "primary_care"))),

		AllowedOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "*")),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 20),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),

		SlotHorizonDays: getEnvAsInt("SLOT_HORIZON_DAYS", 14),
		SlotSeed:        int64(getEnvAsInt("SLOT_SEED", 1)),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// splitAndTrim splits a comma-separated list, dropping empty entries.
func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
