package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port       string
	Env        string
	APIPrefix  string
	CORSOrigin []string
	// TrustedProxies lists proxy CIDRs/IPs whose forwarding headers are
	// honored when resolving the client IP. Empty trusts none.
	TrustedProxies []string

	DB         DatabaseConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	OpenRouter OpenRouterConfig
	YouTube    YouTubeConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MigrationsPath string
}

// RedisConfig contains Redis connection parameters. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis server is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// RateLimitConfig controls the per-IP request limiter.
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
}

// OpenRouterConfig contains settings for the OpenAI-compatible LLM gateway.
type OpenRouterConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	SiteURL     string
	AppName     string
	Temperature float64
	MaxTokens   int
	MaxSteps    int
}

// YouTubeConfig contains the YouTube Data API key.
type YouTubeConfig struct {
	APIKey string
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Missing .env is fine, production relies on real environment variables.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "3000")
	cfg.Env = getEnv("ENV", "development")
	cfg.APIPrefix = "/" + strings.Trim(getEnv("API_PREFIX", "/api/v1"), "/")
	cfg.CORSOrigin = splitList(getEnv("CORS_ORIGIN", "*"))
	cfg.TrustedProxies = splitList(getEnv("TRUSTED_PROXIES", ""))

	// Database
	cfg.DB = DatabaseConfig{
		Host:           getEnv("DB_HOST", ""),
		Port:           getEnv("DB_PORT", "5432"),
		User:           getEnv("DB_USER", ""),
		Password:       getEnv("DB_PASSWORD", ""),
		Name:           getEnv("DB_NAME", ""),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
	}

	// Redis (optional)
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// LLM gateway
	cfg.OpenRouter = OpenRouterConfig{
		APIKey:      getEnv("OPENROUTER_API_KEY", ""),
		BaseURL:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:       getEnv("OPENROUTER_MODEL", "openchat/openchat-8b"),
		SiteURL:     getEnv("OPENROUTER_SITE_URL", "http://localhost:8000"),
		AppName:     getEnv("OPENROUTER_APP_NAME", "Multi Tool AI Assistance"),
		Temperature: getEnvFloat("OPENROUTER_TEMPERATURE", 0.3),
		MaxTokens:   getEnvInt("OPENROUTER_MAX_TOKENS", 2000),
		MaxSteps:    getEnvInt("AGENT_MAX_STEPS", 5),
	}

	cfg.YouTube = YouTubeConfig{
		APIKey: getEnv("YOUTUBE_API_KEY", ""),
	}

	var err error
	if cfg.RateLimit.Window, err = parseDurationEnv("RATE_LIMIT_WINDOW", "15m"); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	cfg.RateLimit.MaxRequests = getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100)
	if cfg.RateLimit.MaxRequests <= 0 {
		return nil, errors.New("RATE_LIMIT_MAX_REQUESTS must be > 0")
	}
	if cfg.OpenRouter.MaxSteps <= 0 {
		return nil, errors.New("AGENT_MAX_STEPS must be > 0")
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}
	return d, nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
