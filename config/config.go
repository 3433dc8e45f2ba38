package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	STOCKS_BASE_URL=https://jsonmock.hackerrank.com/api/stocks
//	STOCKS_TIMEOUT=10s
//	RATE_LIMIT_RPS=5
//	RATE_LIMIT_BURST=20
//	SESSION_TTL=30m
//	POSTGRES_ENABLED=false
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=stockpager
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Stocks    StocksConfig    // Upstream stocks endpoint
	RateLimit RateLimitConfig // Per-client request limits
	Session   SessionConfig   // Viewer session settings
	Postgres  PostgresConfig  // Fetch log database (optional)
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// StocksConfig describes the remote endpoint serving paginated stock records.
//
// Fields:
//   - BaseURL: address that "?page=<n>" is appended to.
//   - Timeout: upper bound for one request; exceeding it counts as a transport failure.
type StocksConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RateLimitConfig bounds how fast a single client IP may hit the service.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// SessionConfig controls how long an idle viewer session keeps its page state.
type SessionConfig struct {
	TTL time.Duration
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Enabled: when false the fetch log is disabled and no connection is made.
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// .env values become real env vars; existing env vars win
	_ = godotenv.Load()

	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("STOCKS_BASE_URL", "https://jsonmock.hackerrank.com/api/stocks")
	viper.SetDefault("STOCKS_TIMEOUT", "10s")

	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	viper.SetDefault("SESSION_TTL", "30m")

	viper.SetDefault("POSTGRES_ENABLED", false)
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "stockpager")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Stocks: StocksConfig{
			BaseURL: viper.GetString("STOCKS_BASE_URL"),
			Timeout: viper.GetDuration("STOCKS_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
		Session: SessionConfig{
			TTL: viper.GetDuration("SESSION_TTL"),
		},
		Postgres: PostgresConfig{
			Enabled:  viper.GetBool("POSTGRES_ENABLED"),
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// missingKeys lists the required variables that are unset or invalid.
// Postgres keys are only required when the fetch log is enabled.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Stocks.BaseURL == "" {
		missing = append(missing, "STOCKS_BASE_URL")
	}
	if cfg.Stocks.Timeout <= 0 {
		missing = append(missing, "STOCKS_TIMEOUT")
	}
	if !cfg.Postgres.Enabled {
		return missing
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	return missing
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}
