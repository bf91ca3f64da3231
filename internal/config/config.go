package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string
	HTTPPort    string
	LogLevel    string

	// Redis Config
	RedisAddr string
	RedisPass string
	RedisDB   int

	// SIGAE upstream API
	SigaeBaseURL    string
	SigaeIP         string
	SigaeUser       string
	SigaePassword   string
	SigaeSystemCode string
	SigaeTimeout    time.Duration

	// Sync scheduling
	LatestSyncInterval time.Duration
	OpenSyncInterval   time.Duration
	LatestSyncWindow   time.Duration

	// Webhook Config
	WebhookURL        string
	WebhookSecret     string
	WebhookTimeout    time.Duration
	WebhookMaxRetries int
	WebhookBaseDelay  time.Duration

	// API Keys for authentication
	APIKeys []string
}

// LoadConfig loads configuration from environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		SigaeBaseURL:       os.Getenv("SIGAE_API_URL"),
		SigaeIP:            os.Getenv("SIGAE_IP"),
		SigaeUser:          os.Getenv("SIGAE_USER"),
		SigaePassword:      os.Getenv("SIGAE_PASSWORD"),
		SigaeSystemCode:    os.Getenv("SIGAE_SYSTEM_CODE"),
		SigaeTimeout:       getEnvAsDuration("SIGAE_TIMEOUT", 30*time.Second),
		LatestSyncInterval: getEnvAsDuration("LATEST_SYNC_INTERVAL", 5*time.Minute),
		OpenSyncInterval:   getEnvAsDuration("OPEN_SYNC_INTERVAL", 30*time.Minute),
		LatestSyncWindow:   getEnvAsDuration("LATEST_SYNC_WINDOW", 24*time.Hour),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", 1*time.Second),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.SigaeBaseURL == "" {
		return nil, fmt.Errorf("SIGAE_API_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable parsed as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable parsed as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
