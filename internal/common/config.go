package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Driver   DriverConfig
	Services ServicesConfig
	Storage  StorageConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// DriverConfig tunes the pipeline driver.
type DriverConfig struct {
	BatchSize      int
	MaxPasses      int
	WallBudget     time.Duration
	StaleThreshold time.Duration
	Interval       time.Duration
}

// ServicesConfig points at the external collaborators.
type ServicesConfig struct {
	ReportBaseURL   string
	ReportAPIKey    string
	NotifyBaseURL   string
	NotifyAPIKey    string
	NotifyFrom      string
	TableOCRBaseURL string
	TableOCRAPIKey  string
	HTTPTimeout     time.Duration
}

// StorageConfig holds blob storage configuration.
type StorageConfig struct {
	RootDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Driver: DriverConfig{
			BatchSize:      getEnvAsInt("DRIVER_BATCH_SIZE", 25),
			MaxPasses:      getEnvAsInt("DRIVER_MAX_PASSES", 10),
			WallBudget:     getEnvAsDuration("DRIVER_WALL_BUDGET", 8*time.Minute),
			StaleThreshold: getEnvAsDuration("DRIVER_STALE_THRESHOLD", 60*time.Minute),
			Interval:       getEnvAsDuration("DRIVER_INTERVAL", 30*time.Second),
		},
		Services: ServicesConfig{
			ReportBaseURL:   getEnv("REPORT_BASE_URL", ""),
			ReportAPIKey:    getEnv("REPORT_API_KEY", ""),
			NotifyBaseURL:   getEnv("NOTIFY_BASE_URL", ""),
			NotifyAPIKey:    getEnv("NOTIFY_API_KEY", ""),
			NotifyFrom:      getEnv("NOTIFY_FROM", "reports@propscope.io"),
			TableOCRBaseURL: getEnv("TABLE_OCR_BASE_URL", ""),
			TableOCRAPIKey:  getEnv("TABLE_OCR_API_KEY", ""),
			HTTPTimeout:     getEnvAsDuration("SERVICES_HTTP_TIMEOUT", 45*time.Second),
		},
		Storage: StorageConfig{
			RootDir: getEnv("STORAGE_ROOT", "./data"),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Driver.BatchSize <= 0 || c.Driver.MaxPasses <= 0 {
		return NewAppError("CONFIG_ERROR", "driver batch size and max passes must be positive", ErrInvalidInput)
	}
	return nil
}
