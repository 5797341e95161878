package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Chat      ChatConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Seed      SeedConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins string
}

// DatabaseConfig holds database connection and pool configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

// ChatConfig holds the external NL-to-SQL service configuration
type ChatConfig struct {
	BaseURL string
	Token   string
}

// RateLimitConfig holds fixed-window rate limiter configuration
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// SeedConfig holds seeder configuration
type SeedConfig struct {
	FilePath string
}

// Load loads the application configuration from environment variables
func Load() *Config {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "invoice_analytics"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		},
		Chat: ChatConfig{
			BaseURL: getEnv("CHAT_SERVICE_URL", "http://localhost:8001"),
			Token:   getEnv("CHAT_SERVICE_TOKEN", ""),
		},
		RateLimit: RateLimitConfig{
			RequestsPerWindow: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
			Window:            getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Seed: SeedConfig{
			FilePath: getEnv("SEED_FILE", "./data/invoices.json"),
		},
	}
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
