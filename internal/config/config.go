package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	Queue    QueueConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
}

// QueueConfig holds delivery queue configuration
type QueueConfig struct {
	ProcessSecret     string
	BatchSize         int
	LeaseDuration     time.Duration
	SchedulerEnabled  bool
	SchedulerInterval time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}

	// Queue configuration. The process secret is optional; when unset the
	// process-queue endpoint is open, which is only acceptable behind a
	// private network.
	cfg.Queue.ProcessSecret = os.Getenv("QUEUE_PROCESS_SECRET")

	batchSize := getEnvWithDefault("QUEUE_BATCH_SIZE", "50")
	cfg.Queue.BatchSize, err = strconv.Atoi(batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse QUEUE_BATCH_SIZE: %w", err)
	}

	leaseMinutes := getEnvWithDefault("QUEUE_LEASE_MINUTES", "10")
	leaseM, err := strconv.Atoi(leaseMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse QUEUE_LEASE_MINUTES: %w", err)
	}
	cfg.Queue.LeaseDuration = time.Duration(leaseM) * time.Minute

	cfg.Queue.SchedulerEnabled = getEnvWithDefault("QUEUE_SCHEDULER_ENABLED", "true") == "true"

	intervalMinutes := getEnvWithDefault("QUEUE_SCHEDULER_INTERVAL_MINUTES", "1")
	intervalM, err := strconv.Atoi(intervalMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse QUEUE_SCHEDULER_INTERVAL_MINUTES: %w", err)
	}
	cfg.Queue.SchedulerInterval = time.Duration(intervalM) * time.Minute

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
