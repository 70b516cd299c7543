package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the portal service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database
	DatabaseURL      string `yaml:"database_url"`
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Kratos
	KratosPublicURL string `yaml:"kratos_public_url"`
	KratosAdminURL  string `yaml:"kratos_admin_url"`

	// Portal
	// GuestOrganizationID is the reserved sentinel organization assigned to
	// guest accounts. It is deployment configuration, never hardcoded.
	GuestOrganizationID uuid.UUID     `yaml:"guest_organization_id"`
	SessionTimeout      time.Duration `yaml:"session_timeout"`

	// Notifications
	ContactNotifyURL   string `yaml:"contact_notify_url"`
	ContactNotifyToken string `yaml:"-"`

	// Features
	EnableAuditLog bool `yaml:"enable_audit_log"`
	EnableMetrics  bool `yaml:"enable_metrics"`
}

// Load reads configuration from the environment, with an optional YAML file
// overlay pointed at by CONFIG_FILE applied before env values.
func Load() (*Config, error) {
	config := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", defaultString(config.Port, "9500"))
	config.Host = getEnvOrDefault("HOST", defaultString(config.Host, "0.0.0.0"))
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", defaultString(config.LogLevel, "info"))

	// Database configuration
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseURL = v
	}
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", defaultString(config.DatabaseHost, "portal-postgres"))
	config.DatabasePort = getEnvOrDefault("DB_PORT", defaultString(config.DatabasePort, "5432"))
	config.DatabaseName = getEnvOrDefault("DB_NAME", defaultString(config.DatabaseName, "portal_db"))
	config.DatabaseUser = getEnvOrDefault("DB_USER", defaultString(config.DatabaseUser, "portal_user"))
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", defaultString(config.DatabaseSSLMode, "require"))

	// Kratos configuration
	if v := os.Getenv("KRATOS_PUBLIC_URL"); v != "" {
		config.KratosPublicURL = v
	}
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	if v := os.Getenv("KRATOS_ADMIN_URL"); v != "" {
		config.KratosAdminURL = v
	}
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Portal configuration
	if v := os.Getenv("GUEST_ORGANIZATION_ID"); v != "" {
		guestOrgID, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GUEST_ORGANIZATION_ID: %w", err)
		}
		config.GuestOrganizationID = guestOrgID
	}
	if config.GuestOrganizationID == (uuid.UUID{}) {
		return nil, fmt.Errorf("GUEST_ORGANIZATION_ID is required")
	}

	sessionTimeoutStr := os.Getenv("SESSION_TIMEOUT")
	if sessionTimeoutStr != "" {
		timeout, err := time.ParseDuration(sessionTimeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TIMEOUT: %w", err)
		}
		config.SessionTimeout = timeout
	}
	if config.SessionTimeout == 0 {
		config.SessionTimeout = 24 * time.Hour
	}

	// Notification configuration
	if v := os.Getenv("CONTACT_NOTIFY_URL"); v != "" {
		config.ContactNotifyURL = v
	}
	config.ContactNotifyToken = os.Getenv("CONTACT_NOTIFY_TOKEN")

	// Feature flags
	config.EnableAuditLog = getBoolEnv("ENABLE_AUDIT_LOG", true)
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFile applies a YAML config file overlay
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.SessionTimeout < time.Minute {
		return fmt.Errorf("session timeout must be at least 1 minute, got: %v", c.SessionTimeout)
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

func defaultString(current, fallback string) string {
	if current != "" {
		return current
	}
	return fallback
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
