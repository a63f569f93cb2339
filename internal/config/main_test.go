package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"steamapi.xdoubleu.com/internal/config"
	"steamapi.xdoubleu.com/pkg/steam"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		// registers the restore of the current value
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestDefaults(t *testing.T) {
	unsetEnv(
		t,
		"STEAM_API_KEY",
		"STEAM_BASE_URL",
		"STEAM_STOREFRONT_URL",
		"HTTP_TIMEOUT",
		"WORKERS",
	)

	cfg := config.New(logging.NewNopLogger())

	assert.Equal(t, "", cfg.SteamAPIKey)
	assert.Equal(t, steam.BaseURLRESTAPI, cfg.SteamBaseURL)
	assert.Equal(t, steam.StorefrontURLRESTAPI, cfg.SteamStorefrontURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 4, cfg.Workers)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "key")
	t.Setenv("STEAM_BASE_URL", "http://localhost:8080")
	t.Setenv("HTTP_TIMEOUT", "1m30s")
	t.Setenv("WORKERS", "8")

	cfg := config.New(logging.NewNopLogger())

	assert.Equal(t, "key", cfg.SteamAPIKey)
	assert.Equal(t, "http://localhost:8080", cfg.SteamBaseURL)
	assert.Equal(t, 90*time.Second, cfg.Timeout())
	assert.Equal(t, 8, cfg.Workers)
}

func TestTimeout(t *testing.T) {
	tests := map[string]time.Duration{
		"10s":   10 * time.Second,
		"1d":    24 * time.Hour,
		"1w2d":  9 * 24 * time.Hour,
		"bogus": 0,
		"-5s":   0,
	}

	for value, expected := range tests {
		cfg := config.Config{HTTPTimeout: value}
		assert.Equal(t, expected, cfg.Timeout(), value)
	}
}

func TestAPIKeyIsNotLogged(t *testing.T) {
	t.Setenv("STEAM_API_KEY", "SECRET-KEY-123")
	t.Setenv("STEAM_BASE_URL", "http://localhost:8080")

	var buf bytes.Buffer
	cfg := config.New(slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Equal(t, "SECRET-KEY-123", cfg.SteamAPIKey)
	assert.NotContains(t, buf.String(), "SECRET-KEY-123")
	assert.Contains(t, buf.String(), "http://localhost:8080")
}
