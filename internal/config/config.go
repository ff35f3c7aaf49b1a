// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cookiee01/data-engineering-learning-agent/internal/llm"
	"github.com/joho/godotenv"
)

// Progress storage backends
const (
	BackendFile  = "file"
	BackendMySQL = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Progress  ProgressConfig
	LLM       llm.Config
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig holds the per-IP request limit
type RateLimitConfig struct {
	RequestsPerMinute int
}

// ProgressConfig selects where progress records are stored
type ProgressConfig struct {
	Backend  string // "file" or "mysql"
	FilePath string
}

// Load reads configuration from an optional .env file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}

	// Logging configuration
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if cfg.RateLimit.RequestsPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimit.RequestsPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	// Progress storage configuration
	cfg.Progress.Backend = strings.ToLower(os.Getenv("PROGRESS_BACKEND"))
	if cfg.Progress.Backend == "" {
		cfg.Progress.Backend = BackendFile
	}
	cfg.Progress.FilePath = os.Getenv("PROGRESS_FILE")
	if cfg.Progress.FilePath == "" {
		cfg.Progress.FilePath = "learning_progress.json"
	}

	switch cfg.Progress.Backend {
	case BackendFile:
	case BackendMySQL:
		if err := loadDatabase(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown PROGRESS_BACKEND %q", cfg.Progress.Backend)
	}

	// Model collaborator configuration
	if cfg.LLM, err = llm.ConfigFromEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDatabase reads the database settings, all of which are required for the mysql backend
func loadDatabase(cfg *Config) error {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	return nil
}

// DSN returns the database connection string, or "" when no database is configured
func (c *Config) DSN() string {
	if c.Database.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// parseOrigins splits a comma-separated origin list; empty input allows all origins
func parseOrigins(raw string) []string {
	origins := []string{}
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
