package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Has reports whether field failed validation
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// ValidateConfig checks if the configuration meets the requirements for env
func ValidateConfig(cfg *Config, env Environment) error {
	var errs ValidationErrors
	require := func(field, value string) {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("ServerPort", cfg.ServerPort)
	require("JWTSecret", cfg.JWTSecret)

	switch cfg.DBDriver {
	case DriverPostgres:
		require("DBHost", cfg.DBHost)
		require("DBPort", cfg.DBPort)
		require("DBUser", cfg.DBUser)
		require("DBName", cfg.DBName)
		if env == CI || env == Production {
			require("DBPassword", cfg.DBPassword)
		}
	case DriverSQLite:
		if env == Production {
			errs = append(errs, ValidationError{Field: "DBDriver", Message: "sqlite is not supported in production"})
		}
		require("SQLitePath", cfg.SQLitePath)
	default:
		errs = append(errs, ValidationError{Field: "DBDriver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if env == Production {
		if !cfg.RedisEnabled() {
			errs = append(errs, ValidationError{Field: "RedisURL", Message: "redis is required in production"})
		}
		if len(cfg.JWTSecret) > 0 && len(cfg.JWTSecret) < 32 {
			errs = append(errs, ValidationError{Field: "JWTSecret", Message: "must be at least 32 characters in production"})
		}
	}
	if cfg.RedisHost != "" && cfg.RedisURL == "" {
		require("RedisPort", cfg.RedisPort)
	}
	if cfg.S3Bucket != "" {
		require("S3Region", cfg.S3Region)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
