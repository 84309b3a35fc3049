package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the Beesides API
type Config struct {
	// Server
	Port     string `env:"PORT" default:"3000"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Appwrite platform
	AppwriteEndpoint  string `env:"APPWRITE_ENDPOINT" default:"https://cloud.appwrite.io/v1"`
	AppwriteProjectID string `env:"APPWRITE_PROJECT_ID" required:"true"`
	AppwriteAPIKey    string `env:"APPWRITE_API_KEY" default:""`

	// Profile document location (document id == user id)
	ProfileDatabaseID   string `env:"PROFILE_DATABASE_ID" default:"default_database"`
	ProfileCollectionID string `env:"PROFILE_COLLECTION_ID" default:"users"`

	// Upstream HTTP client
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" default:"30s"`

	// Features
	EnableMetrics bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "3000")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Appwrite configuration. A missing project id is a fatal startup
	// condition: the service must not come up unconfigured.
	config.AppwriteEndpoint = getEnvOrDefault("APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1")
	config.AppwriteProjectID = os.Getenv("APPWRITE_PROJECT_ID")
	if config.AppwriteProjectID == "" {
		return nil, fmt.Errorf("APPWRITE_PROJECT_ID is required")
	}
	config.AppwriteAPIKey = os.Getenv("APPWRITE_API_KEY")

	// Profile document location
	config.ProfileDatabaseID = getEnvOrDefault("PROFILE_DATABASE_ID", "default_database")
	config.ProfileCollectionID = getEnvOrDefault("PROFILE_COLLECTION_ID", "users")

	// Upstream client configuration
	var err error
	timeoutStr := getEnvOrDefault("REQUEST_TIMEOUT", "30s")
	config.RequestTimeout, err = time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	// Feature flags
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate Appwrite endpoint (must be an absolute URL)
	parsed, err := url.Parse(c.AppwriteEndpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid Appwrite endpoint: %s", c.AppwriteEndpoint)
	}

	// Validate request timeout (minimum 1 second)
	if c.RequestTimeout < time.Second {
		return fmt.Errorf("request timeout must be at least 1 second, got: %v", c.RequestTimeout)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
