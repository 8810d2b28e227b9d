package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks the configuration for the current environment.
// Development is permissive; production refuses to run on defaults.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBHost == "" {
		errors = append(errors, "database host is required")
	}
	if cfg.DBName == "" {
		errors = append(errors, "database name is required")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT secret is required")
	}
	if cfg.RateLimit <= 0 {
		errors = append(errors, "rate limit must be positive")
	}

	if IsProduction() {
		if cfg.JWTSecret == "dev-secret" {
			errors = append(errors, "JWT secret must be set explicitly in production")
		}
		if cfg.DBPassword == "postgres" {
			errors = append(errors, "database password must be set explicitly in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
