package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testConfig = `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "booking"
password = "booking"
dbname = "booking"
sslmode = "disable"
migrations_path = "migrations"

[app]
timezone = "Asia/Jakarta"

[notifier]
enabled = true
poll_interval_seconds = 5
batch_size = 20
max_attempts = 5

[bot_gateway]
url = "http://localhost:9000"
timeout = 5
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "Asia/Jakarta", cfg.App.Timezone)
	assert.True(t, cfg.Notifier.Enabled)
	assert.Equal(t, 20, cfg.Notifier.BatchSize)
	assert.Equal(t, "http://localhost:9000", cfg.BotGateway.URL)
	assert.Equal(t, "host=localhost port=5432 user=booking password=booking dbname=booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("BOT_GATEWAY_URL", "http://gateway.internal")

	cfg, err := Load(writeConfig(t, testConfig))

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "http://gateway.internal", cfg.BotGateway.URL)
}

func TestLoad_TimezoneDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))

	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", cfg.App.Timezone)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}
