package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the volunteer-hub service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database (durable session storage). Either DATABASE_URL or the
	// discrete DB_* settings must be provided; the URL wins when both are.
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseHost     string `env:"DB_HOST" default:"hub-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"hub_sessions"`
	DatabaseUser     string `env:"DB_USER" default:"hub_user"`
	DatabasePassword string `env:"DB_PASSWORD"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Upstream platform API
	HubAPIURL     string        `env:"HUB_API_URL" required:"true"`
	HubAPITimeout time.Duration `env:"HUB_API_TIMEOUT" default:"30s"`

	// Sessions
	SessionTTL    time.Duration `env:"SESSION_TTL" default:"24h"`
	TokenSecret   string        `env:"TOKEN_SECRET" required:"true"`
	TokenIssuer   string        `env:"TOKEN_ISSUER" default:"volunteer-hub"`
	TokenAudience string        `env:"TOKEN_AUDIENCE" default:"volunteer-hub-web"`

	// Features
	EnableMetrics bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "hub-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "hub_sessions")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "hub_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")
	if config.DatabaseURL == "" && config.DatabasePassword == "" {
		return nil, fmt.Errorf("either DATABASE_URL or the DB_* settings (with DB_PASSWORD) is required")
	}

	// Upstream platform API
	config.HubAPIURL = os.Getenv("HUB_API_URL")
	if config.HubAPIURL == "" {
		return nil, fmt.Errorf("HUB_API_URL is required")
	}

	var err error
	hubTimeoutStr := getEnvOrDefault("HUB_API_TIMEOUT", "30s")
	config.HubAPITimeout, err = time.ParseDuration(hubTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HUB_API_TIMEOUT: %w", err)
	}

	// Session configuration
	sessionTTLStr := getEnvOrDefault("SESSION_TTL", "24h")
	config.SessionTTL, err = time.ParseDuration(sessionTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config.TokenSecret = os.Getenv("TOKEN_SECRET")
	if config.TokenSecret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required")
	}
	config.TokenIssuer = getEnvOrDefault("TOKEN_ISSUER", "volunteer-hub")
	config.TokenAudience = getEnvOrDefault("TOKEN_AUDIENCE", "volunteer-hub-web")

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
	// Validate port range (1-65535)
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate upstream URL
	parsed, err := url.Parse(c.HubAPIURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid HUB_API_URL: %s", c.HubAPIURL)
	}

	// Validate token secret (minimum 32 bytes for HS256)
	if len(c.TokenSecret) < 32 {
		return fmt.Errorf("token secret must be at least 32 bytes, got: %d", len(c.TokenSecret))
	}

	// Validate session TTL (minimum 1 minute)
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session TTL must be at least 1 minute, got: %v", c.SessionTTL)
	}

	return nil
}

// DatabaseDSN returns the session store connection string: DATABASE_URL when
// set, otherwise one assembled from the discrete DB_* settings.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
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
