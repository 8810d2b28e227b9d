package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// CORS
	AllowedOrigins []string

	// Checkout rate limiting
	RateLimit int

	// Migrations
	MigrationsDir string
}

// LoadConfig builds a Config from environment variables, falling back to
// Docker secrets and then to development defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getValue("SERVER_PORT", "server_port", "8080"),
		ServerHost: getValue("SERVER_HOST", "server_host", ""),

		DBHost:     getValue("DB_HOST", "db_host", "localhost"),
		DBPort:     getValue("DB_PORT", "db_port", "5432"),
		DBUser:     getValue("DB_USER", "db_user", "postgres"),
		DBPassword: getValue("DB_PASSWORD", "db_password", "postgres"),
		DBName:     getValue("DB_NAME", "db_name", "platefull"),
		DBSSLMode:  getValue("DB_SSL_MODE", "db_ssl_mode", "disable"),

		RedisHost:     getValue("REDIS_HOST", "redis_host", "localhost"),
		RedisPort:     getValue("REDIS_PORT", "redis_port", "6379"),
		RedisPassword: getValue("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      getValue("REDIS_URL", "redis_url", ""),

		JWTSecret: getValue("JWT_SECRET", "jwt_secret", "dev-secret"),

		MigrationsDir: getValue("MIGRATIONS_DIR", "", "migrations"),
	}

	if origins := getValue("ALLOWED_ORIGINS", "", "http://localhost:3000"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(origin))
		}
	}

	limit := getValue("RATE_LIMIT", "", "30")
	parsed, err := strconv.Atoi(limit)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", limit, err)
	}
	cfg.RateLimit = parsed

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getValue reads an environment variable, then a Docker secret, then the
// default.
func getValue(envVar, secretName, fallback string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	if secretName != "" {
		if value := readSecret(secretName); value != "" {
			return value
		}
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
