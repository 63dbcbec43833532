package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func writeConfig(t *testing.T, body string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 8080
  mode: debug
database:
  driver: postgres
  dsn: postgres://u:p@localhost:5432/atlas
  conn_max_lifetime: 30m
  log_level: info
`)
	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, logger.Info, cfg.Database.GORMLogLevel())
	// 未配置的项取默认值
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverridesYAML(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: sqlite
  dsn: database.db
`)
	t.Setenv("DATABASE_DSN", "other.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "other.db", cfg.Database.DSN)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRejectsUnknownDriver(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: oracle
  dsn: x
`)
	_, err := LoadConfigFrom(dir)
	assert.Error(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := LoadConfigFrom(t.TempDir())
	assert.Error(t, err)
}

func TestGORMLogLevelDefault(t *testing.T) {
	d := DatabaseConfig{}
	assert.Equal(t, logger.Warn, d.GORMLogLevel())
}

func TestRejectsUnknownServerMode(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: production
`)
	_, err := LoadConfigFrom(dir)
	assert.ErrorContains(t, err, "server.mode")
}
