package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Database drivers understood by database.Open
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SQLitePath    string
	MigrationsDir string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTIssuer string

	// Export storage
	S3Bucket   string
	S3Region   string
	S3Endpoint string
}

// RedisEnabled reports whether enough is configured to reach Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// ExportEnabled reports whether daily log exports have a bucket to write to.
func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	// Load configuration based on environment
	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg, env); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI environment using ONLY GitHub Actions secrets
func loadCIConfig(cfg *Config) error {
	loadShared(cfg, os.Getenv)
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverPostgres
	}

	// GitHub Actions secrets - use environment variables directly
	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	if cfg.DBPassword == "" && cfg.DBDriver == DriverPostgres {
		return fmt.Errorf("TEST_DB_PASSWORD environment variable is required in CI environment")
	}
	cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	if url := os.Getenv("TEST_REDIS_URL"); url != "" {
		cfg.RedisURL = url
	}

	return nil
}

// loadDevConfig loads configuration for development and test. Every value
// may come from an environment variable or a Docker secret of the same name
// in lower case; the environment wins.
func loadDevConfig(cfg *Config, env Environment) error {
	lookup := func(name string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		return readSecret(strings.ToLower(name))
	}
	loadShared(cfg, lookup)

	cfg.DBPassword = lookup("DB_PASSWORD")
	cfg.JWTSecret = lookup("JWT_SECRET")
	cfg.RedisPassword = lookup("REDIS_PASSWORD")

	// Local defaults
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.ServerHost == "" {
		cfg.ServerHost = "localhost"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverPostgres
		if env == Test {
			cfg.DBDriver = DriverSQLite
		}
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBUser == "" {
		cfg.DBUser = "postgres"
	}
	if cfg.DBName == "" {
		cfg.DBName = "vitalog"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "vitalog.db"
		if env == Test {
			cfg.SQLitePath = ":memory:"
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return nil
}

// loadProdConfig loads configuration for production. Credentials come ONLY
// from Docker secrets.
func loadProdConfig(cfg *Config) error {
	lookup := func(name string) string {
		if v := readSecret(strings.ToLower(name)); v != "" {
			return v
		}
		return os.Getenv(name)
	}
	loadShared(cfg, lookup)
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverPostgres
	}

	cfg.DBPassword = readSecret("db_password")
	cfg.JWTSecret = readSecret("jwt_secret")
	cfg.RedisPassword = readSecret("redis_password")

	return nil
}

// loadShared fills the non-sensitive settings every environment shares.
func loadShared(cfg *Config, lookup func(string) string) {
	cfg.ServerPort = lookup("SERVER_PORT")
	cfg.ServerHost = lookup("SERVER_HOST")
	cfg.CORSOrigins = splitList(lookup("CORS_ORIGINS"))
	cfg.DBDriver = strings.ToLower(lookup("DB_DRIVER"))
	cfg.DBHost = lookup("DB_HOST")
	cfg.DBPort = lookup("DB_PORT")
	cfg.DBUser = lookup("DB_USER")
	cfg.DBName = lookup("DB_NAME")
	cfg.DBSSLMode = lookup("DB_SSL_MODE")
	cfg.SQLitePath = lookup("SQLITE_PATH")
	cfg.MigrationsDir = lookup("MIGRATIONS_DIR")
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
	}
	cfg.RedisHost = lookup("REDIS_HOST")
	cfg.RedisPort = lookup("REDIS_PORT")
	cfg.RedisURL = lookup("REDIS_URL")
	cfg.RedisDB, _ = strconv.Atoi(lookup("REDIS_DB"))
	cfg.JWTIssuer = lookup("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "vitalog"
	}
	cfg.S3Bucket = lookup("S3_BUCKET_NAME")
	cfg.S3Region = lookup("AWS_REGION")
	cfg.S3Endpoint = lookup("S3_ENDPOINT")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
