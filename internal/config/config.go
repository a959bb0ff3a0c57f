// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultSaxoBaseURL = "https://gateway.saxobank.com/sim/openapi"

// Config holds application configuration
type Config struct {
	SaxoBaseURL        string        // Saxo OpenAPI root, e.g. the simulation gateway
	SaxoClientKey      string        // Account client key sent as the ClientKey query parameter
	SaxoRequestTimeout time.Duration // Timeout for a single broker request
	LogLevel           string
	LogPretty          bool
	Port               int
	DevMode            bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		SaxoBaseURL:        getEnv("SAXO_BASE_URL", defaultSaxoBaseURL),
		SaxoClientKey:      getEnv("SAXO_CLIENT_KEY", ""),
		SaxoRequestTimeout: time.Duration(getEnvAsInt("SAXO_REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPretty:          getEnvAsBool("LOG_PRETTY", true),
		Port:               getEnvAsInt("PORT", 8001),
		DevMode:            getEnvAsBool("DEV_MODE", false),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
// An empty client key is allowed; the broker rejects it with a readable error.
func (c *Config) Validate() error {
	if c.SaxoBaseURL == "" {
		return fmt.Errorf("SAXO_BASE_URL must not be empty")
	}
	u, err := url.Parse(c.SaxoBaseURL)
	if err != nil {
		return fmt.Errorf("invalid SAXO_BASE_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid SAXO_BASE_URL %q: scheme must be http or https", c.SaxoBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid SAXO_BASE_URL %q: missing host", c.SaxoBaseURL)
	}

	if c.SaxoRequestTimeout <= 0 {
		return fmt.Errorf("SAXO_REQUEST_TIMEOUT_SECONDS must be positive, got %s", c.SaxoRequestTimeout)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
