package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
http:
  address: ":4000"
  templates_glob: "internal/web/templates/*.tmpl"
database:
  host: "db.internal"
  port: 5432
  user: "app"
  password: "secret"
  name: "flightbooking"
  ssl_mode: "disable"
redis:
  addr: "localhost:6379"
kafka:
  brokers: ["localhost:9092"]
  booking_events_topic: "booking-events"
cache:
  reference_ttl_seconds: 60
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.HTTP.Address)
	assert.Equal(t, "internal/web/templates/*.tmpl", cfg.HTTP.TemplatesGlob)
	assert.Equal(t, "host=db.internal port=5432 user=app password=secret dbname=flightbooking sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 60, cfg.Cache.ReferenceTTLSeconds)
}

func TestLoadConfig_EnvOverridesDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_PASSWORD", "other")

	cfg, err := LoadConfig(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "other", cfg.Database.Password)
	assert.Equal(t, "app", cfg.Database.User)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
