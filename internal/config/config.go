package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Remote API Configuration
	API APIConfig

	// Web front server Configuration
	Web WebConfig

	// Logging Configuration
	Logging LoggingConfig
}

// APIConfig holds the remote API connection settings
type APIConfig struct {
	BaseURL string
	// Timeout bounds each API request; zero means no timeout.
	Timeout time.Duration
}

// WebConfig holds the web front server settings
type WebConfig struct {
	Addr           string
	SessionCookie  string
	CookieSecure   bool
	AllowedOrigins []string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	timeout, err := APITimeout()
	if err != nil {
		return nil, err
	}

	secure, err := boolEnv("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		API: APIConfig{
			BaseURL: strings.TrimSuffix(stringEnv("API_BASE_URL", "http://localhost:5000"), "/"),
			Timeout: timeout,
		},
		Web: WebConfig{
			Addr:           stringEnv("WEB_ADDR", ":3000"),
			SessionCookie:  stringEnv("SESSION_COOKIE", "token"),
			CookieSecure:   secure,
			AllowedOrigins: listEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Logging: LoggingConfig{
			Level:  stringEnv("LOG_LEVEL", "info"),
			Format: stringEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

// APITimeout reads API_TIMEOUT; zero means no timeout.
func APITimeout() (time.Duration, error) {
	return durationEnv("API_TIMEOUT", 0)
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func listEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
