package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the service configuration, sourced from environment variables.
type Config struct {
	Host               string
	Port               string
	AllowedOrigins     []string
	RateLimitPerSecond float64
	// MaxPageTextBytes caps the page text accepted by the fallback locator,
	// bounding regex work on adversarial pages.
	MaxPageTextBytes int
	HomeCurrency     string
}

// Load reads the configuration from the environment, falling back to
// defaults suitable for local development.
func Load() *Config {
	return &Config{
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		RateLimitPerSecond: getEnvFloat("RATE_LIMIT_PER_SECOND", 10),
		MaxPageTextBytes:   getEnvInt("MAX_PAGE_TEXT_BYTES", 512*1024),
		HomeCurrency:       getEnv("HOME_CURRENCY", "CAD"),
	}
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
