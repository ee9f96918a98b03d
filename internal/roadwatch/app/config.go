package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DatabaseFile string `toml:"database_file"` // Optional: path to SQLite database file (default: ./roadwatch.db)
	PepperFile   string `toml:"pepper_file"`   // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SeedFile     string `toml:"seed_file"`     // Optional: YAML seed applied at startup

	Env       string `toml:"env"`        // Environment (dev, staging, prod) (default: dev)
	LogLevel  string `toml:"log_level"`  // Log level (debug, info, warn, error) (default: info)
	LogFormat string `toml:"log_format"` // Log format (json, text) (default: json)
	Port      int    `toml:"port"`       // HTTP server port (default: 8080)

	ShutdownGracePeriod  time.Duration `toml:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration `toml:"housekeeping_interval"` // Housekeeping interval (default: 1h)
	SessionRetention     time.Duration `toml:"session_retention"`     // How long closed sessions are kept (default: 30 days)

	// Firebase is disabled when FirebaseProjectID is empty. Without a
	// credentials file, application default credentials are used.
	FirebaseProjectID       string `toml:"firebase_project_id"`
	FirebaseCredentialsFile string `toml:"firebase_credentials_file"`

	RedisURL         string   `toml:"redis_url"`          // Optional: enables the distributed sync lock
	KafkaBrokers     []string `toml:"kafka_brokers"`      // Optional: enables notification events
	KafkaNotifyTopic string   `toml:"kafka_notify_topic"` // (default: roadwatch.notifications)

	SyncPullInterval time.Duration `toml:"sync_pull_interval"` // 0 disables the periodic pull
	SyncPullTimeout  time.Duration `toml:"sync_pull_timeout"`  // (default: 2m)
	SyncPushTimeout  time.Duration `toml:"sync_push_timeout"`  // (default: 10s)

	AuthRateLimit  int `toml:"ratelimit_auth_per_minute"` // (default: 10)
	AuthRateBurst  int `toml:"ratelimit_auth_burst"`      // (default: 5)
	WriteRateLimit int `toml:"ratelimit_write_per_minute"`
	WriteRateBurst int `toml:"ratelimit_write_burst"`
}

func defaultConfig() Config {
	return Config{
		DatabaseFile:         "roadwatch.db",
		PepperFile:           "pepper",
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 8080,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: 1 * time.Hour,
		SessionRetention:     30 * 24 * time.Hour,
		KafkaNotifyTopic:     "roadwatch.notifications",
		SyncPullTimeout:      2 * time.Minute,
		SyncPushTimeout:      10 * time.Second,
		AuthRateLimit:        10,
		AuthRateBurst:        5,
		WriteRateLimit:       60,
		WriteRateBurst:       30,
	}
}

// LoadConfig builds the configuration from defaults, then the TOML file at
// path (falling back to ROADWATCH_CONFIG), then environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv("ROADWATCH_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.DatabaseFile = getEnvOrDefault("DATABASE_FILE", cfg.DatabaseFile)
	cfg.PepperFile = getEnvOrDefault("PEPPER_FILE", cfg.PepperFile)
	cfg.SeedFile = getEnvOrDefault("SEED_FILE", cfg.SeedFile)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)
	cfg.HousekeepingInterval = getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", cfg.HousekeepingInterval)
	cfg.SessionRetention = getEnvDurationOrDefault("SESSION_RETENTION", cfg.SessionRetention)
	cfg.FirebaseProjectID = getEnvOrDefault("FIREBASE_PROJECT_ID", cfg.FirebaseProjectID)
	cfg.FirebaseCredentialsFile = getEnvOrDefault("FIREBASE_CREDENTIALS_FILE", cfg.FirebaseCredentialsFile)
	cfg.RedisURL = getEnvOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = getEnvListOrDefault("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaNotifyTopic = getEnvOrDefault("KAFKA_NOTIFY_TOPIC", cfg.KafkaNotifyTopic)
	cfg.SyncPullInterval = getEnvDurationOrDefault("SYNC_PULL_INTERVAL", cfg.SyncPullInterval)
	cfg.SyncPullTimeout = getEnvDurationOrDefault("SYNC_PULL_TIMEOUT", cfg.SyncPullTimeout)
	cfg.SyncPushTimeout = getEnvDurationOrDefault("SYNC_PUSH_TIMEOUT", cfg.SyncPushTimeout)
	cfg.AuthRateLimit = getEnvIntOrDefault("RATELIMIT_AUTH_PER_MINUTE", cfg.AuthRateLimit)
	cfg.AuthRateBurst = getEnvIntOrDefault("RATELIMIT_AUTH_BURST", cfg.AuthRateBurst)
	cfg.WriteRateLimit = getEnvIntOrDefault("RATELIMIT_WRITE_PER_MINUTE", cfg.WriteRateLimit)
	cfg.WriteRateBurst = getEnvIntOrDefault("RATELIMIT_WRITE_BURST", cfg.WriteRateBurst)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.FirebaseCredentialsFile != "" && cfg.FirebaseProjectID == "" {
		return Config{}, fmt.Errorf("FIREBASE_CREDENTIALS_FILE is set but FIREBASE_PROJECT_ID is empty")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping empty items.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
