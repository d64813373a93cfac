package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/voltcart/addressd/internal/domain"
)

// DefaultPincodeProviderURL is the reference postal-code lookup API.
// Additional mirrors with the same response shape can be appended via
// PINCODE_PROVIDER_URLS (comma-separated).
const DefaultPincodeProviderURL = "https://api.postalpincode.in/pincode"

type Config struct {
	Env       string
	LogLevel  string
	Port      uint16
	CORS      CORSConfig
	Pincode   PincodeConfig
	RateLimit RateLimitConfig
	Sentry    SentryConfig
}

// RateLimitConfig bounds per-client request rates. Every validation request
// can fan out to external PIN providers, so this doubles as outbound
// back-pressure.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
}

// PincodeConfig controls the external postal-code lookup chain.
type PincodeConfig struct {
	// ProviderURLs are tried in order; each URL serves GET {url}/{pincode}.
	ProviderURLs []string

	// LookupTimeout bounds each individual provider call, not the whole chain.
	LookupTimeout time.Duration
}

// CORSConfig holds allowed origins for the storefront and admin frontends.
type CORSConfig struct {
	AllowedOrigins []string
}

// SentryConfig holds configuration for Sentry error tracking.
type SentryConfig struct {
	DSN              string
	Enabled          bool
	Environment      string
	Release          string
	SampleRate       float64
	TracesSampleRate float64
	Debug            bool
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Pincode: PincodeConfig{
			ProviderURLs:  getEnvList("PINCODE_PROVIDER_URLS", []string{DefaultPincodeProviderURL}),
			LookupTimeout: getEnvDuration("PINCODE_LOOKUP_TIMEOUT", 5*time.Second),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getEnvBool("RATE_LIMIT_ENABLED", true),
			RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 10),
			BurstSize:         int(getEnvInt("RATE_LIMIT_BURST", 20)),
		},
		Sentry: SentryConfig{
			DSN:              getEnv("SENTRY_DSN", ""),
			Enabled:          getEnvBool("SENTRY_ENABLED", false),
			Environment:      getEnv("SENTRY_ENVIRONMENT", "development"),
			Release:          getEnv("SENTRY_RELEASE", ""),
			SampleRate:       getEnvFloat("SENTRY_SAMPLE_RATE", 1.0),
			TracesSampleRate: getEnvFloat("SENTRY_TRACES_SAMPLE_RATE", 0.0),
			Debug:            getEnvBool("SENTRY_DEBUG", false),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if len(cfg.Pincode.ProviderURLs) == 0 {
		return nil, domain.Errorf(domain.EINVALID, "config", "PINCODE_PROVIDER_URLS must name at least one provider")
	}
	if cfg.Pincode.LookupTimeout <= 0 {
		return nil, domain.Errorf(domain.EINVALID, "config", "PINCODE_LOOKUP_TIMEOUT must be positive")
	}
	if cfg.RateLimit.Enabled && (cfg.RateLimit.RequestsPerSecond <= 0 || cfg.RateLimit.BurstSize <= 0) {
		return nil, domain.Errorf(domain.EINVALID, "config", "RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
		slog.Default().Warn("Invalid integer. Using default", slog.String("key", key), slog.String("value", value))
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var floatValue float64
		if _, err := fmt.Sscanf(value, "%f", &floatValue); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		slog.Default().Warn("Invalid duration. Using default", slog.String("key", key), slog.String("value", value))
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
