package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "formly", cfg.Database.DBName)
	assert.Equal(t, "file", cfg.Draft.Backend)
	assert.Equal(t, 300*time.Millisecond, cfg.Draft.Debounce)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.Expiry)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DRAFT_BACKEND", "redis")
	t.Setenv("DRAFT_DEBOUNCE", "50ms")
	t.Setenv("SESSION_EXPIRY", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "redis", cfg.Draft.Backend)
	assert.Equal(t, 50*time.Millisecond, cfg.Draft.Debounce)
	// malformed values fall back to the default
	assert.Equal(t, 7*24*time.Hour, cfg.Session.Expiry)
}

func TestDatabaseURL(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "formly",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/formly?sslmode=disable&prepare_threshold=0", c.URL())
}
