//nolint:mnd //no magic number
package config

import (
	"context"
	"log/slog"
	"time"

	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xhit/go-str2duration/v2"
	"steamapi.xdoubleu.com/pkg/steam"
)

type Config struct {
	Env                string
	Release            string
	SentryDsn          string
	SampleRate         float64
	SteamAPIKey        string
	SteamBaseURL       string
	SteamStorefrontURL string
	HTTPTimeout        string
	Workers            int
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := configtools.New(logger)

	cfg.Env = parser.EnvStr("ENV", configtools.ProdEnv)
	cfg.Release = parser.EnvStr("RELEASE", configtools.DevEnv)
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)

	// the parser logs loaded values at info level
	secrets := configtools.New(slog.New(quietHandler{Handler: logger.Handler()}))
	cfg.SteamAPIKey = secrets.EnvStr("STEAM_API_KEY", "")
	cfg.SteamBaseURL = parser.EnvStr("STEAM_BASE_URL", steam.BaseURLRESTAPI)
	cfg.SteamStorefrontURL = parser.EnvStr(
		"STEAM_STOREFRONT_URL",
		steam.StorefrontURLRESTAPI,
	)

	cfg.HTTPTimeout = parser.EnvStr("HTTP_TIMEOUT", "30s")
	cfg.Workers = parser.EnvInt("WORKERS", 4)

	return cfg
}

// Timeout parses HTTPTimeout, which also accepts days and weeks.
// A malformed or non-positive value disables the timeout.
func (cfg Config) Timeout() time.Duration {
	timeout, err := str2duration.ParseDuration(cfg.HTTPTimeout)
	if err != nil || timeout < 0 {
		return 0
	}

	return timeout
}

// quietHandler only passes on warnings and errors.
type quietHandler struct {
	slog.Handler
}

func (h quietHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn && h.Handler.Enabled(ctx, level)
}

func (h quietHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return quietHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h quietHandler) WithGroup(name string) slog.Handler {
	return quietHandler{Handler: h.Handler.WithGroup(name)}
}
