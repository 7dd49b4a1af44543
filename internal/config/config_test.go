package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVars = []string{
	"PORT", "GITHUB_API_URL", "GITHUB_USER", "GITHUB_TIMEOUT", "PREFS_BACKEND",
	"DATABASE_PATH", "PREFS_RETENTION", "SESSION_TTL", "COOKIE_SECURE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range allVars {
		t.Setenv(v, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.github.com/", cfg.GitHubAPIURL)
	assert.Equal(t, "vercel", cfg.GitHubUser)
	assert.Equal(t, 10*time.Second, cfg.GitHubTimeout)
	assert.Equal(t, BackendCookie, cfg.PrefsBackend)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GITHUB_API_URL", "http://localhost:3000/api/")
	t.Setenv("GITHUB_USER", "golang")
	t.Setenv("GITHUB_TIMEOUT", "3s")
	t.Setenv("PREFS_BACKEND", "sqlite")
	t.Setenv("DATABASE_PATH", "/var/lib/portfolio/prefs.db")
	t.Setenv("PREFS_RETENTION", "720h")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://localhost:3000/api/", cfg.GitHubAPIURL)
	assert.Equal(t, "golang", cfg.GitHubUser)
	assert.Equal(t, 3*time.Second, cfg.GitHubTimeout)
	assert.Equal(t, BackendSQLite, cfg.PrefsBackend)
	assert.Equal(t, "/var/lib/portfolio/prefs.db", cfg.DatabasePath)
	assert.Equal(t, 720*time.Hour, cfg.PrefsRetention)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_RejectsMalformed(t *testing.T) {
	tests := []struct {
		env, value, wantErr string
	}{
		{"PREFS_BACKEND", "redis", "PREFS_BACKEND"},
		{"GITHUB_TIMEOUT", "ten seconds", "GITHUB_TIMEOUT"},
		{"SESSION_TTL", "-5m", "must be positive"},
		{"PREFS_RETENTION", "0s", "must be positive"},
		{"COOKIE_SECURE", "maybe", "COOKIE_SECURE"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
