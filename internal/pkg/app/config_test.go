package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/microblog/internal/pkg/app"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadLocalConfig(t *testing.T) {
	path := writeConfig(t, `
web:
  host: 127.0.0.1
  port: "8080"

db:
  drivername: postgres
  connectionstring: postgres://localhost:5432/microblog?sslmode=disable

redis:
  addr: localhost:6379

cache:
  freshnesssec: 30

logging:
  level: -4
`)

	config, err := app.ReadLocalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", config.Web.Host)
	assert.Equal(t, "8080", config.Web.Port)
	assert.Equal(t, "postgres", config.DB.DriverName)
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, 30*time.Second, config.Cache.Freshness())
	assert.Equal(t, -4, config.Logging.Level)
}

func TestReadLocalConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
web:
  host: 0.0.0.0
`)

	config, err := app.ReadLocalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, config.Web.RateLimit)
	assert.Equal(t, 15*time.Second, config.Web.RateWindow())
	assert.Equal(t, 15*time.Second, config.Cache.Freshness())
}

func TestReadLocalConfig_MissingFile(t *testing.T) {
	_, err := app.ReadLocalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
