package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// defaultAllowedOrigins covers the landing page served locally
const defaultAllowedOrigins = "http://localhost:8080,http://127.0.0.1:8080"

// Config holds all configuration values for the application
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string
	Environment    string
	RedisURL       string // empty disables the listing cache
	StaticDir      string
	SeedFile       string // empty uses the built-in activities
	MetricsEnabled bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", defaultAllowedOrigins)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Environment:    getEnv("ENVIRONMENT", "production"),
		RedisURL:       getEnv("REDIS_URL", ""),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		SeedFile:       getEnv("SEED_FILE", ""),
		MetricsEnabled: getBoolEnv("METRICS_ENABLED", true),
	}, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
