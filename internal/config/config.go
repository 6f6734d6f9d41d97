// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	apperrors "github.com/allisson/sesame/internal/errors"
)

// APIKeyEnvPrefix prefixes the environment variables that configure API clients.
const APIKeyEnvPrefix = "API_KEY_"

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// BaseURI prefixes the Location of created vault records.
	BaseURI string

	// DBDriver is the database driver to use ("postgres" or "mysql").
	DBDriver string
	// DBConnectionString is the connection string for the database.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// EncryptionKeys is the raw ENCRYPTION_KEYS value: comma-separated id:material
	// pairs in priority order. The first key is the active key.
	EncryptionKeys string
	// KMSKeyURI, when set, is the gocloud.dev secrets URI used to unwrap the key material.
	KMSKeyURI string
	// KDFIterations is the PBKDF2 iteration count. Zero selects the cipher default.
	KDFIterations int

	// RotationBatchSize is the number of records re-encrypted concurrently. Zero uses the CPU count.
	RotationBatchSize int
	// RotationTimeout bounds a rotation run. Zero disables the bound.
	RotationTimeout time.Duration

	// PurgeUnresolvableRecords deletes records whose key is no longer configured when they are read.
	PurgeUnresolvableRecords bool

	// AuthEnabled requires basic-auth API keys on the vault routes.
	AuthEnabled bool
	// APIKeys maps client names, taken from API_KEY_<CLIENT>, to their keys.
	APIKeys map[string]string

	// RateLimitEnabled indicates whether per-client rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	serverPort := env.GetInt("SERVER_PORT", 6666)

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: serverPort,
		BaseURI:    env.GetString("BASE_URI", fmt.Sprintf("http://localhost:%d", serverPort)),

		// Database configuration
		DBDriver: env.GetString("DB_DRIVER", DriverPostgres),
		DBConnectionString: env.GetString(
			"DB_CONNECTION_STRING",
			"postgres://localhost/sesame?sslmode=disable",
		),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Encryption
		EncryptionKeys: env.GetString("ENCRYPTION_KEYS", ""),
		KMSKeyURI:      env.GetString("KMS_KEY_URI", ""),
		KDFIterations:  env.GetInt("KDF_ITERATIONS", 120000),

		// Rotation
		RotationBatchSize: env.GetInt("ROTATION_BATCH_SIZE", 0),
		RotationTimeout:   env.GetDuration("ROTATION_TIMEOUT_MINUTES", 0, time.Minute),

		PurgeUnresolvableRecords: env.GetBool("PURGE_UNRESOLVABLE_RECORDS", true),

		// Auth
		AuthEnabled: env.GetBool("AUTH_ENABLED", true),
		APIKeys:     loadAPIKeys(os.Environ()),

		// Rate Limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "sesame"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverMySQL:
	default:
		return apperrors.Wrapf(apperrors.ErrConfiguration, "unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.RotationBatchSize < 0 {
		return apperrors.Wrap(apperrors.ErrConfiguration, "ROTATION_BATCH_SIZE must not be negative")
	}
	if c.AuthEnabled && len(c.APIKeys) == 0 {
		return apperrors.Wrap(
			apperrors.ErrConfiguration,
			"AUTH_ENABLED is true but no API_KEY_<CLIENT> variables are set",
		)
	}
	return nil
}

// ValidateRotation checks the settings key rotation depends on. On PostgreSQL the
// rotation cursor pins one pooled connection for the whole run, so the pool must
// leave at least one more for the record updates.
func (c *Config) ValidateRotation() error {
	if c.RotationBatchSize < 0 {
		return apperrors.Wrap(apperrors.ErrConfiguration, "ROTATION_BATCH_SIZE must not be negative")
	}
	if c.DBDriver == DriverPostgres && c.DBMaxOpenConnections == 1 {
		return apperrors.Wrap(
			apperrors.ErrConfiguration,
			"DB_MAX_OPEN_CONNECTIONS must be at least 2 to rotate keys on postgresql",
		)
	}
	return nil
}

// RotationBatchWidth returns how many records rotation re-encrypts at once:
// ROTATION_BATCH_SIZE, or the CPU count when unset, capped on PostgreSQL to the
// connections left beside the rotation cursor. A non-positive
// DB_MAX_OPEN_CONNECTIONS leaves the pool unbounded.
func (c *Config) RotationBatchWidth() int {
	width := c.RotationBatchSize
	if width <= 0 {
		width = runtime.NumCPU()
	}
	if c.DBDriver == DriverPostgres && c.DBMaxOpenConnections > 1 {
		width = min(width, c.DBMaxOpenConnections-1)
	}
	return width
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadAPIKeys collects API_KEY_<CLIENT>=<key> entries from environ.
// Client names are kept as written; the auth layer lower-cases them.
func loadAPIKeys(environ []string) map[string]string {
	apiKeys := make(map[string]string)
	for _, entry := range environ {
		name, value, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(name, APIKeyEnvPrefix) {
			continue
		}
		apiKeys[strings.TrimPrefix(name, APIKeyEnvPrefix)] = value
	}
	return apiKeys
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
