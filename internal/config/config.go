package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
)

// Ledger sources understood by LedgerConfig.Source.
const (
	LedgerSourceSQLite   = "sqlite"
	LedgerSourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Ledger   LedgerConfig
	Snapshot SnapshotConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// LedgerConfig selects where financial statements read transactions from.
// With the sqlite source statements use the local database; with the postgres
// source they read a hosted transactions table through PostgresURL.
type LedgerConfig struct {
	Source      string
	PostgresURL string
}

// SnapshotConfig controls the monthly statement snapshot job
type SnapshotConfig struct {
	Enabled     bool
	Schedule    string // standard 5-field cron expression
	Concurrency int
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level       string
	Development bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/ledger.db"),
		},
		Ledger: LedgerConfig{
			Source: strings.ToLower(getEnv("LEDGER_SOURCE", LedgerSourceSQLite)),
		},
		Snapshot: SnapshotConfig{
			Enabled:  getEnvBool("SNAPSHOT_ENABLED", true),
			Schedule: getEnv("SNAPSHOT_SCHEDULE", "0 2 1 * *"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Log: LogConfig{
			Level:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Development: getEnvBool("LOG_DEVELOPMENT", false),
		},
	}

	concurrency, err := strconv.Atoi(getEnv("SNAPSHOT_CONCURRENCY", "4"))
	if err != nil || concurrency < 1 {
		return nil, fmt.Errorf("invalid SNAPSHOT_CONCURRENCY: must be a positive integer")
	}
	config.Snapshot.Concurrency = concurrency

	switch config.Ledger.Source {
	case LedgerSourceSQLite:
	case LedgerSourcePostgres:
		url, err := postgresURL()
		if err != nil {
			return nil, err
		}
		config.Ledger.PostgresURL = url
	default:
		return nil, fmt.Errorf("invalid LEDGER_SOURCE %q: must be %q or %q",
			config.Ledger.Source, LedgerSourceSQLite, LedgerSourcePostgres)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// postgresURL resolves the hosted ledger DSN. A plain LEDGER_POSTGRES_URL wins;
// otherwise LEDGER_POSTGRES_URL_FERNET is decrypted with FERNET_KEY.
func postgresURL() (string, error) {
	if url := os.Getenv("LEDGER_POSTGRES_URL"); url != "" {
		return url, nil
	}

	token := os.Getenv("LEDGER_POSTGRES_URL_FERNET")
	if token == "" {
		return "", fmt.Errorf("LEDGER_POSTGRES_URL or LEDGER_POSTGRES_URL_FERNET is required for the postgres ledger source")
	}

	return DecryptSecret(os.Getenv("FERNET_KEY"), token)
}

// DecryptSecret decrypts a fernet token with the given base64 key.
// Tokens do not expire; rotation is handled by re-encrypting the value.
func DecryptSecret(key, token string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("FERNET_KEY is required to decrypt secrets")
	}

	keys, err := fernet.DecodeKeys(key)
	if err != nil {
		return "", fmt.Errorf("failed to decode fernet key: %w", err)
	}

	msg := fernet.VerifyAndDecrypt([]byte(token), -1*time.Second, keys)
	if msg == nil {
		return "", fmt.Errorf("failed to decrypt secret: invalid token or key")
	}

	return string(msg), nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
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
