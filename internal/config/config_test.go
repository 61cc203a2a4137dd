package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FromYAMLWithDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  driver: sqlite
  url: "file::memory:"
jwt:
  secret: yaml-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "yaml-secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, time.Minute, cfg.CacheTTL())
	assert.Zero(t, cfg.SweepInterval())
	assert.Equal(t, time.Hour, cfg.SweepGrace())
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  url: postgres://yaml
jwt:
  secret: yaml-secret
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "mysql")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "postgres://yaml", cfg.Database.DSN)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mongo" }, true},
		{"empty secret", func(c *Config) { c.JWT.Secret = "" }, true},
		{"empty dsn", func(c *Config) { c.Database.DSN = "" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"s3 storage", func(c *Config) { c.Storage.Type = "s3" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			c.applyDefaults()
			c.Database.DSN = "file::memory:"
			c.JWT.Secret = "secret"
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
