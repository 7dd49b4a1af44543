package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Preference backends.
const (
	BackendCookie = "cookie"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port string

	GitHubAPIURL  string
	GitHubUser    string // shown when the visitor has not picked one
	GitHubTimeout time.Duration

	PrefsBackend   string
	DatabasePath   string
	PrefsRetention time.Duration

	SessionTTL   time.Duration
	CookieSecure bool
}

func DefaultConfig() Config {
	return Config{
		Port:           "8080",
		GitHubAPIURL:   "https://api.github.com/",
		GitHubUser:     "vercel",
		GitHubTimeout:  10 * time.Second,
		PrefsBackend:   BackendCookie,
		DatabasePath:   "data/portfolio.db",
		PrefsRetention: 365 * 24 * time.Hour,
		SessionTTL:     30 * time.Minute,
		CookieSecure:   false,
	}
}

// Load reads the environment on top of DefaultConfig. Unset variables keep
// their defaults; malformed ones are an error.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.GitHubAPIURL = v
	}
	if v := os.Getenv("GITHUB_USER"); v != "" {
		cfg.GitHubUser = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}

	if v := os.Getenv("PREFS_BACKEND"); v != "" {
		switch v {
		case BackendCookie, BackendSQLite:
			cfg.PrefsBackend = v
		default:
			return cfg, fmt.Errorf("PREFS_BACKEND: unknown backend %q (want %s or %s)", v, BackendCookie, BackendSQLite)
		}
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{"GITHUB_TIMEOUT", &cfg.GitHubTimeout},
		{"PREFS_RETENTION", &cfg.PrefsRetention},
		{"SESSION_TTL", &cfg.SessionTTL},
	}
	for _, d := range durations {
		v := os.Getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", d.env, err)
		}
		if parsed <= 0 {
			return cfg, fmt.Errorf("%s: must be positive, got %s", d.env, v)
		}
		*d.dst = parsed
	}

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	}

	return cfg, nil
}
