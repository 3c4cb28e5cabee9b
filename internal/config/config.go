package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Device   DeviceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// DeviceConfig holds fingerprint reader configuration.
// An empty BaseURL means no reader is configured; reconciliation then runs store-only.
type DeviceConfig struct {
	BaseURL      string
	Timeout      time.Duration
	SyncInterval time.Duration
	SyncEnabled  bool
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "biotrack_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Device configuration
	deviceTimeout, err := time.ParseDuration(getEnv("DEVICE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_TIMEOUT: %w", err)
	}

	syncInterval, err := time.ParseDuration(getEnv("DEVICE_SYNC_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_SYNC_INTERVAL: %w", err)
	}

	syncEnabled, err := strconv.ParseBool(getEnv("DEVICE_SYNC_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_SYNC_ENABLED: %w", err)
	}

	config.Device = DeviceConfig{
		BaseURL:      getEnv("DEVICE_BASE_URL", ""),
		Timeout:      deviceTimeout,
		SyncInterval: syncInterval,
		SyncEnabled:  syncEnabled,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Device.Timeout <= 0 {
		return fmt.Errorf("DEVICE_TIMEOUT must be positive")
	}
	if c.Device.SyncEnabled && c.Device.SyncInterval <= 0 {
		return fmt.Errorf("DEVICE_SYNC_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
