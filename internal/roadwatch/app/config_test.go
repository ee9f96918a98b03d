package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ROADWATCH_CONFIG", "DATABASE_FILE", "PEPPER_FILE", "SEED_FILE", "ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT",
	"SHUTDOWN_GRACE_PERIOD", "HOUSEKEEPING_INTERVAL", "SESSION_RETENTION", "FIREBASE_PROJECT_ID",
	"FIREBASE_CREDENTIALS_FILE", "REDIS_URL", "KAFKA_BROKERS", "KAFKA_NOTIFY_TOPIC", "SYNC_PULL_INTERVAL",
	"SYNC_PULL_TIMEOUT", "SYNC_PUSH_TIMEOUT", "RATELIMIT_AUTH_PER_MINUTE", "RATELIMIT_AUTH_BURST", "RATELIMIT_WRITE_PER_MINUTE",
	"RATELIMIT_WRITE_BURST",
}

func clearEnv(t *testing.T) {
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "roadwatch.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = 9090
log_format = "text"
shutdown_grace_period = "30s"
kafka_brokers = ["k1:9092"]
firebase_project_id = "roadwatch-dev"
`), 0o600))

	t.Setenv("ROADWATCH_CONFIG", path)
	t.Setenv("PORT", "9191")
	t.Setenv("SYNC_PULL_INTERVAL", "5")
	t.Setenv("SYNC_PULL_TIMEOUT", "45s")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092,")
	t.Setenv("HOUSEKEEPING_INTERVAL", "not-a-duration")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Port)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 5*time.Minute, cfg.SyncPullInterval)
	require.Equal(t, 45*time.Second, cfg.SyncPullTimeout)
	require.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, "roadwatch-dev", cfg.FirebaseProjectID)
}

func TestLoadConfigRejects(t *testing.T) {
	clearEnv(t)

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadConfig("")
		require.Error(t, err)
	})

	t.Run("credentials without project", func(t *testing.T) {
		t.Setenv("FIREBASE_CREDENTIALS_FILE", "/etc/roadwatch/sa.json")
		_, err := LoadConfig("")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}
